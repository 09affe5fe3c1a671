package builtins

import "strings"

// Split breaks "Name(param1, param2)" into a lower-case name and its
// parameters. Commas inside quotes or nested parentheses do not split,
// surrounding quotes are removed and \" escapes a quote.
func Split(command string) (string, []string) {
	command = strings.TrimSpace(command)
	open := strings.IndexByte(command, '(')
	if open < 0 {
		return strings.ToLower(command), nil
	}
	name := strings.ToLower(strings.TrimSpace(command[:open]))
	body := command[open+1:]
	if end := strings.LastIndexByte(body, ')'); end >= 0 {
		body = body[:end]
	}
	if strings.TrimSpace(body) == "" {
		return name, nil
	}

	var params []string
	var cur strings.Builder
	depth := 0
	quoted := false
	wasQuoted := false
	flush := func() {
		p := cur.String()
		if !wasQuoted {
			p = strings.TrimSpace(p)
		}
		params = append(params, p)
		cur.Reset()
		wasQuoted = false
	}
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case ch == '\\' && i+1 < len(body) && body[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"' && depth == 0:
			quoted = !quoted
			if quoted {
				// text before the opening quote is whitespace only
				cur.Reset()
				wasQuoted = true
			}
		case quoted:
			cur.WriteByte(ch)
		case ch == '(':
			depth++
			cur.WriteByte(ch)
		case ch == ')':
			depth--
			cur.WriteByte(ch)
		case ch == ',' && depth == 0:
			flush()
		case wasQuoted:
			// drop anything between the closing quote and the comma
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return name, params
}

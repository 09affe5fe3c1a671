package infomgr

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type labelPart struct {
	text    string
	id      int
	prefix  string
	postfix string
}

// Label is a composite skin label such as
// "$INFO[Player.Time,,/]$INFO[Player.Duration] $LOCALIZE[594]".
type Label struct {
	raw   string
	parts []labelPart
	m     *Manager
}

// ParseLabel compiles text once and caches it. Malformed markup is kept as
// literal text.
func (m *Manager) ParseLabel(text string) *Label {
	m.mu.RLock()
	l, ok := m.labels[text]
	m.mu.RUnlock()
	if ok {
		return l
	}
	l = &Label{raw: text, m: m}
	l.parts = m.parseParts(text)
	m.mu.Lock()
	m.labels[text] = l
	m.mu.Unlock()
	return l
}

func (m *Manager) parseParts(text string) []labelPart {
	var parts []labelPart
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, labelPart{text: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(text); {
		kind, body, next, ok := nextMarkup(text, i)
		if !ok {
			literal.WriteByte(text[i])
			i++
			continue
		}
		switch kind {
		case "INFO":
			info, prefix, postfix := splitInfoArgs(body)
			part := labelPart{id: m.Register(info), prefix: unescape(prefix), postfix: unescape(postfix)}
			if part.id == 0 {
				slog.Warn("infomgr: bad $INFO in label", "label", text, "info", body)
			}
			flush()
			parts = append(parts, part)
		case "LOCALIZE":
			id, err := strconv.Atoi(strings.TrimSpace(body))
			if err != nil {
				slog.Warn("infomgr: bad $LOCALIZE in label", "label", text, "id", body)
			} else {
				literal.WriteString(m.loc.Get(id))
			}
		}
		i = next
	}
	flush()
	return parts
}

// nextMarkup recognises $INFO[...] and $LOCALIZE[...] at position i with
// nested brackets inside the body.
func nextMarkup(text string, i int) (kind, body string, next int, ok bool) {
	for _, k := range []string{"INFO", "LOCALIZE"} {
		prefix := "$" + k + "["
		if !strings.HasPrefix(strings.ToUpper(text[i:min(len(text), i+len(prefix))]), prefix) {
			continue
		}
		start := i + len(prefix)
		depth := 1
		for j := start; j < len(text); j++ {
			switch text[j] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return k, text[start:j], j + 1, true
				}
			}
		}
		return "", "", 0, false
	}
	return "", "", 0, false
}

// splitInfoArgs splits "label,prefix,postfix". Only the label may contain
// parenthesised commas; prefix and postfix are taken verbatim.
func splitInfoArgs(body string) (info, prefix, postfix string) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				rest := body[i+1:]
				if j := strings.IndexByte(rest, ','); j >= 0 {
					return strings.TrimSpace(body[:i]), rest[:j], rest[j+1:]
				}
				return strings.TrimSpace(body[:i]), rest, ""
			}
		}
	}
	return strings.TrimSpace(body), "", ""
}

func unescape(s string) string {
	return strings.ReplaceAll(s, "$COMMA", ",")
}

// IsConstant reports whether the label has no $INFO parts.
func (l *Label) IsConstant() bool {
	for _, p := range l.parts {
		if p.id != 0 {
			return false
		}
	}
	return true
}

func (l *Label) Resolve(window int, item *listitem.Item) string {
	var b strings.Builder
	for _, p := range l.parts {
		if p.id == 0 {
			b.WriteString(p.text)
			continue
		}
		if v := l.m.GetLabel(p.id, window, item, nil); v != "" {
			b.WriteString(p.prefix)
			b.WriteString(v)
			b.WriteString(p.postfix)
		}
	}
	return b.String()
}

func (l *Label) String() string { return fmt.Sprintf("label(%q)", l.raw) }

// ResolveLabel parses (cached) and resolves text in one call.
func (m *Manager) ResolveLabel(text string, window int, item *listitem.Item) string {
	return m.ParseLabel(text).Resolve(window, item)
}

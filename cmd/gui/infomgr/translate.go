package infomgr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
)

type segment struct {
	name string
	args []string
}

// splitSegments splits "container(50).listitem(-1).label" on dots outside
// parentheses. Segment names are lower-cased, arguments keep their case.
func splitSegments(label string) ([]segment, error) {
	var segs []segment
	depth, start := 0, 0
	flush := func(end int) error {
		raw := strings.TrimSpace(label[start:end])
		if raw == "" {
			return fmt.Errorf("empty segment in %q", label)
		}
		seg := segment{name: raw}
		if open := strings.IndexByte(raw, '('); open >= 0 {
			if !strings.HasSuffix(raw, ")") {
				return fmt.Errorf("unbalanced parentheses in %q", label)
			}
			seg.name = raw[:open]
			seg.args = splitArgs(raw[open+1 : len(raw)-1])
		}
		seg.name = strings.ToLower(strings.TrimSpace(seg.name))
		segs = append(segs, seg)
		return nil
	}
	for i := 0; i < len(label); i++ {
		switch label[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", label)
			}
		case '.':
			if depth == 0 {
				if err := flush(i); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", label)
	}
	if err := flush(len(label)); err != nil {
		return nil, err
	}
	return segs, nil
}

// splitArgs splits on commas outside nested parentheses.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}

var listItemPrefixes = map[string]infocode.Code{
	"listitem":         infocode.FlagListItemWrap,
	"listitemnowrap":   infocode.FlagListItemNoWrap,
	"listitemposition": infocode.FlagListItemPosition,
	"listitemabsolute": infocode.FlagListItemAbsolute,
}

// numericArgs lists codes whose first argument is an integer id.
var numericArgs = map[infocode.Code]bool{
	infocode.ControlHasFocus:       true,
	infocode.ControlIsVisible:      true,
	infocode.ControlIsEnabled:      true,
	infocode.SystemIdleTime:        true,
	infocode.WindowIsActive:        true,
	infocode.WindowIsVisible:       true,
	infocode.WindowIsMedia:         true,
	infocode.WindowIsDialogTopmost: true,
}

// comparisons take info labels as operands.
var comparisons = map[string]infocode.Code{
	"string.isempty":           infocode.StringIsEmpty,
	"string.isequal":           infocode.StringIsEqual,
	"string.startswith":        infocode.StringStartsWith,
	"string.endswith":          infocode.StringEndsWith,
	"string.contains":          infocode.StringContains,
	"integer.isequal":          infocode.IntegerIsEqual,
	"integer.isgreater":        infocode.IntegerIsGreater,
	"integer.isgreaterorequal": infocode.IntegerIsGreaterOrEqual,
	"integer.isless":           infocode.IntegerIsLess,
	"integer.islessorequal":    infocode.IntegerIsLessOrEqual,
}

// translate turns a label string into an Info. register is used for
// comparison operands that are themselves info labels.
func translate(label string, register func(string) int) (infocode.Info, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "true", "yes":
		return infocode.Info{Code: infocode.SystemAlwaysTrue}, nil
	case "false", "no":
		return infocode.Info{Code: infocode.SystemAlwaysFalse}, nil
	}
	segs, err := splitSegments(label)
	if err != nil {
		return infocode.Info{}, err
	}

	first := segs[0]
	if first.name == "container" || listItemPrefixes[first.name] != 0 || first.name == "listitem" {
		return translateContainer(label, segs)
	}

	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.name
	}
	name := strings.Join(names, ".")
	args := segs[len(segs)-1].args

	if code, ok := comparisons[name]; ok {
		return translateComparison(label, code, args, register)
	}
	if name == "skin.string" && len(args) == 2 {
		return infocode.Info{Code: infocode.SkinStringIsEqual, Data3: args[0], Data4: args[1]}, nil
	}

	code, ok := infocode.Lookup(name)
	if !ok {
		return infocode.Info{}, fmt.Errorf("unknown info label %q", label)
	}
	info := infocode.Info{Code: code}
	if err := applyArgs(&info, args); err != nil {
		return infocode.Info{}, fmt.Errorf("%q: %w", label, err)
	}
	return info, nil
}

func applyArgs(info *infocode.Info, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if numericArgs[info.Code] {
		if n, err := strconv.Atoi(args[0]); err == nil {
			info.Data1 = n
		} else {
			info.Data3 = args[0]
		}
	} else {
		info.Data3 = args[0]
	}
	if len(args) > 1 {
		info.Data4 = args[1]
	}
	if len(args) > 2 {
		return fmt.Errorf("too many arguments")
	}
	return nil
}

func translateContainer(label string, segs []segment) (infocode.Info, error) {
	info := infocode.Info{}
	var flags infocode.Code
	rest := segs

	if rest[0].name == "container" {
		if len(rest[0].args) > 0 {
			id, err := strconv.Atoi(rest[0].args[0])
			if err != nil {
				return info, fmt.Errorf("bad container id in %q", label)
			}
			info.Data1 = id
		}
		rest = rest[1:]
		if len(rest) == 0 {
			return info, fmt.Errorf("incomplete container label %q", label)
		}
		if _, isItem := listItemPrefixes[rest[0].name]; !isItem {
			// Container(id).NumItems, Container.Row(2), ...
			name := "container." + joinNames(rest)
			code, ok := infocode.Lookup(name)
			if !ok {
				return info, fmt.Errorf("unknown info label %q", label)
			}
			info.Code = code
			if args := rest[len(rest)-1].args; len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return info, fmt.Errorf("bad argument in %q", label)
				}
				info.Data2 = n
			}
			return info, nil
		}
		flags |= infocode.FlagListItemContainer
	}

	head := rest[0]
	if len(rest) < 2 {
		return info, fmt.Errorf("incomplete list item label %q", label)
	}
	if len(head.args) > 0 {
		offset, err := strconv.Atoi(head.args[0])
		if err != nil {
			return info, fmt.Errorf("bad list item offset in %q", label)
		}
		info.Data2 = offset
		flags |= listItemPrefixes[head.name]
	} else if head.name != "listitem" {
		flags |= listItemPrefixes[head.name]
	}

	name := "listitem." + joinNames(rest[1:])
	code, ok := infocode.Lookup(name)
	if !ok {
		return info, fmt.Errorf("unknown info label %q", label)
	}
	info.Code = code | flags
	if err := applyArgs(&info, rest[len(rest)-1].args); err != nil {
		return info, fmt.Errorf("%q: %w", label, err)
	}
	return info, nil
}

func joinNames(segs []segment) string {
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.name
	}
	return strings.Join(names, ".")
}

// Comparison operands: Data1 is the registered id of the left info label.
// The right side is an info label (Data2 = its id) or a literal (Data2 = 0,
// Data3 = text).
func translateComparison(label string, code infocode.Code, args []string, register func(string) int) (infocode.Info, error) {
	want := 2
	if code == infocode.StringIsEmpty {
		want = 1
	}
	if len(args) != want {
		return infocode.Info{}, fmt.Errorf("%q needs %d arguments", label, want)
	}
	left := register(args[0])
	if left == 0 {
		return infocode.Info{}, fmt.Errorf("bad operand %q in %q", args[0], label)
	}
	info := infocode.Info{Code: code, Data1: left}
	if want == 2 {
		if _, err := translate(args[1], register); err == nil && !isLiteral(args[1]) {
			info.Data2 = register(args[1])
		} else {
			info.Data3 = args[1]
		}
	}
	return info, nil
}

func isLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no":
		return true
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

package infoprov

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// FormatDuration renders d as h:mm:ss, or mm:ss when under an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

type timeToken struct{ from, to string }

// kodiTokens are tried in order, so longer tokens come first. h is the
// 12 hour clock, H the 24 hour one.
var kodiTokens = []timeToken{
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"ss", "05"},
	{"xx", "PM"},
}

// FormatTime renders t with a skin time format such as "hh:mm:ss xx" or
// "DDDD, d MMMM yyyy". Each token is formatted on its own and everything
// between tokens is copied as is, so literal digits or words never act as
// layout elements. An empty format falls back to the Go layout def.
func FormatTime(t time.Time, format, def string) string {
	if format == "" {
		return t.Format(def)
	}
	var b strings.Builder
	for i := 0; i < len(format); {
		tok, ok := lo.Find(kodiTokens, func(tok timeToken) bool {
			return strings.HasPrefix(format[i:], tok.from)
		})
		if !ok {
			b.WriteByte(format[i])
			i++
			continue
		}
		b.WriteString(t.Format(tok.to))
		i += len(tok.from)
	}
	return b.String()
}

func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(part / whole * 100)
}

func joinList(v []string) string {
	return strings.Join(v, " / ")
}

func itoaNonZero(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

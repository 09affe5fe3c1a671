// Package infocode holds the numeric namespace of queryable GUI state.
//
// A Code is split in two disjoint parts: the low 24 bits identify the piece
// of information, the high 8 bits carry list item resolution flags. Codes are
// grouped into sub-ranges that never overlap, so a provider can decide with a
// single comparison whether a query is meant for it.
package infocode

import (
	"fmt"
	"sort"
)

type Code uint32

const (
	ValueMask Code = 0x00FFFFFF
	FlagMask  Code = 0xFF000000
)

// List item resolution flags.
const (
	// FlagListItemWrap wraps the resolved index modulo the item count.
	FlagListItemWrap Code = 1 << 24
	// FlagListItemPosition offsets from the first visible row instead of the cursor.
	FlagListItemPosition Code = 1 << 25
	// FlagListItemAbsolute treats the offset as an absolute item index.
	FlagListItemAbsolute Code = 1 << 26
	// FlagListItemNoWrap disables wrapping even when FlagListItemWrap is set.
	FlagListItemNoWrap Code = 1 << 27
	// FlagListItemContainer forces lookup through a container control.
	FlagListItemContainer Code = 1 << 28
)

func (c Code) Value() Code { return c & ValueMask }

func (c Code) Flags() Code { return c & FlagMask }

func (c Code) Has(flag Code) bool { return c&flag == flag }

func (c Code) With(flags Code) Code { return c | (flags & FlagMask) }

func (c Code) String() string {
	if name, ok := NameOf(c.Value()); ok {
		if c.Flags() != 0 {
			return fmt.Sprintf("%s|0x%08X", name, uint32(c.Flags()))
		}
		return name
	}
	return fmt.Sprintf("code(%d)", uint32(c))
}

// Range is a closed interval of code values.
type Range struct {
	Name  string
	Start Code
	End   Code
}

func (r Range) Contains(c Code) bool {
	v := c.Value()
	return v >= r.Start && v <= r.End
}

func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

var (
	RangePlayer        = Range{"player", 30, 99}
	RangeWeather       = Range{"weather", 100, 119}
	RangeString        = Range{"string", 120, 149}
	RangeSystem        = Range{"system", 150, 349}
	RangeContainer     = Range{"container", 350, 419}
	RangeControl       = Range{"control", 420, 439}
	RangeWindow        = Range{"window", 440, 469}
	RangePlaylist      = Range{"playlist", 470, 499}
	RangeVisualisation = Range{"visualisation", 500, 549}
	RangeSkin          = Range{"skin", 550, 599}
	RangeAddon         = Range{"addon", 600, 649}
	RangeSlideshow     = Range{"slideshow", 650, 749}
	RangePVR           = Range{"pvr", 1100, 1299}
	RangeListItem      = Range{"listitem", 35000, 35999}
)

// Ranges returns all sub-ranges ordered by start.
func Ranges() []Range {
	rs := []Range{
		RangePlayer, RangeWeather, RangeString, RangeSystem, RangeContainer,
		RangeControl, RangeWindow, RangePlaylist, RangeVisualisation, RangeSkin,
		RangeAddon, RangeSlideshow, RangePVR, RangeListItem,
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Start < rs[j].Start })
	return rs
}

// RangeOf returns the sub-range a code belongs to.
func RangeOf(c Code) (Range, bool) {
	for _, r := range Ranges() {
		if r.Contains(c) {
			return r, true
		}
	}
	return Range{}, false
}

func IsListItem(c Code) bool { return RangeListItem.Contains(c) }

// Info is a translated label: a code plus the parameters parsed out of the
// label string, e.g. Container(50).ListItem(-2).Label gives Data1=50 and
// Data2=-2.
type Info struct {
	Code  Code
	Data1 int
	Data2 int
	Data3 string
	Data4 string
}

func (i Info) Value() Code { return i.Code.Value() }

func (i Info) Flags() Code { return i.Code.Flags() }

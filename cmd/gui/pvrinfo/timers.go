package pvrinfo

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

type group int

const (
	groupAll group = iota
	groupTV
	groupRadio
)

func (g group) accepts(t Timer) bool {
	switch g {
	case groupTV:
		return !t.Radio
	case groupRadio:
		return t.Radio
	}
	return true
}

// timerInfo is the cache behind the Now/Next recording labels of one
// group. toggleIdx cycles through the active recordings, or through the
// timers when nothing records.
type timerInfo struct {
	timers     int
	recordings int

	toggleIdx   int
	toggleStart time.Time

	now     Timer
	hasNow  bool
	next    Timer
	hasNext bool
}

func (ti *timerInfo) boundary() int {
	if ti.recordings > 0 {
		return ti.recordings
	}
	return ti.timers
}

// toggle advances toggleIdx once per interval. It reports whether the
// shown recording has to be refreshed.
func (ti *timerInfo) toggle(now time.Time, interval time.Duration) bool {
	if ti.toggleStart.IsZero() {
		ti.toggleStart = now
		ti.toggleIdx = 0
		return true
	}
	if now.Sub(ti.toggleStart) <= interval {
		return false
	}
	prev := ti.toggleIdx
	ti.toggleIdx++
	if ti.toggleIdx >= ti.boundary() {
		ti.toggleIdx = 0
	}
	if ti.toggleIdx != prev {
		ti.toggleStart = now
		return true
	}
	return false
}

func sortedByStart(timers []Timer) []Timer {
	out := slices.Clone(timers)
	slices.SortStableFunc(out, func(a, b Timer) int { return a.Start.Compare(b.Start) })
	return out
}

func activeRecordings(timers []Timer, g group, now time.Time) []Timer {
	return lo.Filter(timers, func(t Timer, _ int) bool { return g.accepts(t) && t.IsRecording(now) })
}

func activeTimers(timers []Timer, g group, now time.Time) []Timer {
	return lo.Filter(timers, func(t Timer, _ int) bool { return g.accepts(t) && t.IsActive(now) })
}

// nextTimer is the earliest enabled timer that has not started yet.
func nextTimer(timers []Timer, g group, now time.Time) (Timer, bool) {
	return lo.Find(timers, func(t Timer) bool { return g.accepts(t) && !t.Disabled && now.Before(t.Start) })
}

// restart makes the next toggle show the first recording again.
func (ti *timerInfo) restart() { ti.toggleStart = time.Time{} }

// recount updates the amounts and restarts the toggle when they change.
func (ti *timerInfo) recount(timers []Timer, g group, now time.Time) {
	n := len(activeTimers(timers, g, now))
	r := len(activeRecordings(timers, g, now))
	if n != ti.timers || r != ti.recordings {
		ti.timers, ti.recordings = n, r
		ti.restart()
	}
}

// update runs the toggle and next-timer steps for one group.
func (ti *timerInfo) update(timers []Timer, g group, now time.Time, interval time.Duration) {
	if ti.toggle(now, interval) {
		ti.now, ti.hasNow = Timer{}, false
		if ti.recordings > 0 {
			rec := activeRecordings(timers, g, now)
			if ti.toggleIdx < len(rec) {
				ti.now, ti.hasNow = rec[ti.toggleIdx], true
			}
		}
	}
	ti.next, ti.hasNext = nextTimer(timers, g, now)
}

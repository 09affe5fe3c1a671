package infoprov

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

// SystemSnapshot is the last values collected by the system poller.
type SystemSnapshot struct {
	Valid      bool
	Uptime     time.Duration
	MemTotal   uint64
	MemFree    uint64
	MemUsed    uint64
	CPUPercent float64
	CPUCount   int
	DiskTotal  uint64
	DiskFree   uint64
	DiskUsed   uint64
	Hostname   string
}

type SystemStats interface {
	Snapshot() SystemSnapshot
}

type IdleTracker interface {
	IdleTime() time.Duration
}

// SystemIdentity holds the static System.* labels.
type SystemIdentity struct {
	BuildVersion string
	FriendlyName string
	Language     string
}

// System answers SYSTEM_* from cached poller values; it never does I/O.
type System struct {
	base
	stats    SystemStats
	idle     IdleTracker
	identity SystemIdentity
	loc      Localizer
	clock    Clock
	goos     string
}

func NewSystem(stats SystemStats, idle IdleTracker, identity SystemIdentity, loc Localizer, clock Clock) *System {
	return &System{stats: stats, idle: idle, identity: identity, loc: loc, clock: clock, goos: runtime.GOOS}
}

func (p *System) Name() string { return "system" }

func (p *System) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeSystem}
}

func (p *System) snapshot() SystemSnapshot {
	if p.stats == nil {
		return SystemSnapshot{}
	}
	return p.stats.Snapshot()
}

func (p *System) GetLabel(_ *listitem.Item, q Query, _ *string) (string, bool) {
	switch q.Code() {
	case infocode.SystemTime:
		return FormatTime(p.clock.Now(), q.Info.Data3, "15:04"), true
	case infocode.SystemDate:
		return FormatTime(p.clock.Now(), q.Info.Data3, "Monday, 2 January 2006"), true
	case infocode.SystemBuildVersion:
		return p.identity.BuildVersion, true
	case infocode.SystemFriendlyName:
		return p.identity.FriendlyName, true
	case infocode.SystemLanguage:
		return p.identity.Language, true
	}

	s := p.snapshot()
	if !s.Valid {
		switch q.Code() {
		case infocode.SystemUptime, infocode.SystemFreeMemory, infocode.SystemUsedMemory,
			infocode.SystemTotalMemory, infocode.SystemFreeMemoryPercent, infocode.SystemUsedMemoryPercent,
			infocode.SystemCPUUsage, infocode.SystemFreeSpace, infocode.SystemUsedSpace,
			infocode.SystemTotalSpace, infocode.SystemFreeSpacePercent, infocode.SystemUsedSpacePercent,
			infocode.SystemHostname, infocode.SystemCPUCount:
			return p.loc.Get(localize.BackendUnknown), true
		}
		return "", false
	}
	switch q.Code() {
	case infocode.SystemUptime:
		mins := int(s.Uptime / time.Minute)
		return fmt.Sprintf(p.loc.Get(localize.UptimeFormat), mins/(60*24), mins/60%24, mins%60), true
	case infocode.SystemFreeMemory:
		return common.FormatBytes(int64(s.MemFree)), true
	case infocode.SystemUsedMemory:
		return common.FormatBytes(int64(s.MemUsed)), true
	case infocode.SystemTotalMemory:
		return common.FormatBytes(int64(s.MemTotal)), true
	case infocode.SystemFreeMemoryPercent:
		return fmt.Sprintf("%d%%", percent(float64(s.MemFree), float64(s.MemTotal))), true
	case infocode.SystemUsedMemoryPercent:
		return fmt.Sprintf("%d%%", percent(float64(s.MemUsed), float64(s.MemTotal))), true
	case infocode.SystemCPUUsage:
		return fmt.Sprintf("%.0f%%", s.CPUPercent), true
	case infocode.SystemCPUCount:
		return fmt.Sprintf("%d", s.CPUCount), true
	case infocode.SystemFreeSpace:
		return common.FormatBytes(int64(s.DiskFree)), true
	case infocode.SystemUsedSpace:
		return common.FormatBytes(int64(s.DiskUsed)), true
	case infocode.SystemTotalSpace:
		return common.FormatBytes(int64(s.DiskTotal)), true
	case infocode.SystemFreeSpacePercent:
		return fmt.Sprintf("%d%%", percent(float64(s.DiskFree), float64(s.DiskTotal))), true
	case infocode.SystemUsedSpacePercent:
		return fmt.Sprintf("%d%%", percent(float64(s.DiskUsed), float64(s.DiskTotal))), true
	case infocode.SystemHostname:
		return s.Hostname, true
	}
	return "", false
}

func (p *System) GetInt(_ *listitem.Item, q Query) (int, bool) {
	s := p.snapshot()
	switch q.Code() {
	case infocode.SystemFreeMemoryPercent:
		return percent(float64(s.MemFree), float64(s.MemTotal)), true
	case infocode.SystemUsedMemoryPercent:
		return percent(float64(s.MemUsed), float64(s.MemTotal)), true
	case infocode.SystemCPUUsage:
		return int(s.CPUPercent), true
	case infocode.SystemCPUCount:
		return s.CPUCount, true
	case infocode.SystemFreeSpacePercent:
		return percent(float64(s.DiskFree), float64(s.DiskTotal)), true
	case infocode.SystemUsedSpacePercent:
		return percent(float64(s.DiskUsed), float64(s.DiskTotal)), true
	}
	return 0, false
}

func (p *System) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	switch q.Code() {
	case infocode.SystemPlatformLinux:
		return p.goos == "linux", true
	case infocode.SystemPlatformWindows:
		return p.goos == "windows", true
	case infocode.SystemPlatformDarwin:
		return p.goos == "darwin", true
	case infocode.SystemIdleTime:
		if p.idle == nil {
			return false, true
		}
		return p.idle.IdleTime() >= time.Duration(q.Info.Data1)*time.Second, true
	}
	return false, false
}

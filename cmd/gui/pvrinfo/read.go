package pvrinfo

import (
	"fmt"
	"time"

	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

const (
	dateTimeLayout = "2006-01-02 15:04"
	timeLayout     = "15:04:05"
	longDateLayout = "Monday, 2 January 2006"
)

func (s *Service) unknownBackend() string { return s.loc.Get(localize.BackendUnknown) }

func (s *Service) unknownAdapter() string { return s.loc.Get(localize.AdapterUnknown) }

func orUnknown(v, unknown string) string {
	if v == "" {
		return unknown
	}
	return v
}

func countOrUnknown(n int, unknown string) string {
	if n <= 0 {
		return unknown
	}
	return fmt.Sprintf("%d", n)
}

func isBackendCode(code infocode.Code) bool {
	return code >= infocode.PVRBackendName && code <= infocode.PVRTotalDiskspace
}

// groupOf maps the group specific codes onto the generic ones.
func groupOf(code infocode.Code) (group, infocode.Code) {
	switch code {
	case infocode.PVRIsRecordingTV:
		return groupTV, infocode.PVRIsRecording
	case infocode.PVRHasTVTimer:
		return groupTV, infocode.PVRHasTimer
	case infocode.PVRHasNonRecordingTVTimer:
		return groupTV, infocode.PVRHasNonRecordingTimer
	case infocode.PVRTVNowRecordingTitle:
		return groupTV, infocode.PVRNowRecordingTitle
	case infocode.PVRTVNowRecordingChannel:
		return groupTV, infocode.PVRNowRecordingChannel
	case infocode.PVRTVNowRecordingDateTime:
		return groupTV, infocode.PVRNowRecordingDateTime
	case infocode.PVRTVNextRecordingTitle:
		return groupTV, infocode.PVRNextRecordingTitle
	case infocode.PVRTVNextRecordingChannel:
		return groupTV, infocode.PVRNextRecordingChannel
	case infocode.PVRTVNextRecordingDateTime:
		return groupTV, infocode.PVRNextRecordingDateTime
	case infocode.PVRTVNextTimer:
		return groupTV, infocode.PVRNextTimer
	case infocode.PVRIsRecordingRadio:
		return groupRadio, infocode.PVRIsRecording
	case infocode.PVRHasRadioTimer:
		return groupRadio, infocode.PVRHasTimer
	case infocode.PVRHasNonRecordingRadioTimer:
		return groupRadio, infocode.PVRHasNonRecordingTimer
	case infocode.PVRRadioNowRecordingTitle:
		return groupRadio, infocode.PVRNowRecordingTitle
	case infocode.PVRRadioNowRecordingChannel:
		return groupRadio, infocode.PVRNowRecordingChannel
	case infocode.PVRRadioNowRecordingDateTime:
		return groupRadio, infocode.PVRNowRecordingDateTime
	case infocode.PVRRadioNextRecordingTitle:
		return groupRadio, infocode.PVRNextRecordingTitle
	case infocode.PVRRadioNextRecordingChannel:
		return groupRadio, infocode.PVRNextRecordingChannel
	case infocode.PVRRadioNextRecordingDateTime:
		return groupRadio, infocode.PVRNextRecordingDateTime
	case infocode.PVRRadioNextTimer:
		return groupRadio, infocode.PVRNextTimer
	}
	return groupAll, code
}

// Label answers the string PVR infos. Reading a backend value asks the
// poller to refresh the client list.
func (s *Service) Label(code infocode.Code, format string) (string, bool) {
	if isBackendCode(code) {
		s.backendRequested.Store(true)
	}
	c := s.snapshot()
	g, code := groupOf(code)
	ti := c.groups[g]
	st := c.stream

	switch code {
	case infocode.PVRNowRecordingTitle:
		return ti.now.Title, true
	case infocode.PVRNowRecordingChannel:
		return ti.now.Channel, true
	case infocode.PVRNowRecordingDateTime:
		if !ti.hasNow {
			return "", true
		}
		return infoprov.FormatTime(ti.now.Start, format, dateTimeLayout), true
	case infocode.PVRNextRecordingTitle:
		return ti.next.Title, true
	case infocode.PVRNextRecordingChannel:
		return ti.next.Channel, true
	case infocode.PVRNextRecordingDateTime:
		if !ti.hasNext {
			return "", true
		}
		return infoprov.FormatTime(ti.next.Start, format, dateTimeLayout), true
	case infocode.PVRNextTimer:
		if !ti.hasNext {
			return "", true
		}
		return fmt.Sprintf("%s %s %s %s", s.loc.Get(localize.NextRecordingOn),
			ti.next.Start.Format(longDateLayout), s.loc.Get(localize.NextRecordingAt),
			ti.next.Start.Format("15:04")), true
	}

	if isBackendCode(code) {
		return s.backendLabel(c, code), true
	}

	switch code {
	case infocode.PVRActualStreamClient:
		return orUnknown(st.Client, s.unknownAdapter()), true
	case infocode.PVRActualStreamDevice:
		return orUnknown(st.Device, s.unknownAdapter()), true
	case infocode.PVRActualStreamStatus:
		return orUnknown(st.Status, s.unknownAdapter()), true
	case infocode.PVRActualStreamSig:
		return fmt.Sprintf("%d %%", st.Signal), true
	case infocode.PVRActualStreamSNR:
		return fmt.Sprintf("%d %%", st.SNR), true
	case infocode.PVRActualStreamBER:
		return fmt.Sprintf("%08X", st.BER), true
	case infocode.PVRActualStreamUNC:
		return fmt.Sprintf("%08X", st.UNC), true
	case infocode.PVRActualStreamEncryptionName:
		if !st.Encrypted {
			return s.loc.Get(localize.FreeToAir), true
		}
		return orUnknown(st.Encryption, s.unknownAdapter()), true
	case infocode.PVRActualStreamService:
		return orUnknown(st.Service, s.unknownAdapter()), true
	case infocode.PVRActualStreamMux:
		return orUnknown(st.Mux, s.unknownAdapter()), true
	case infocode.PVRActualStreamProvider:
		return orUnknown(st.Provider, s.unknownAdapter()), true
	case infocode.PVRChannelNumberInput:
		return st.ChannelNumberInput, true
	}

	if ts := st.Timeshift; ts.Active {
		switch code {
		case infocode.PVRTimeshiftStartTime:
			return infoprov.FormatTime(ts.Start, format, timeLayout), true
		case infocode.PVRTimeshiftEndTime:
			return infoprov.FormatTime(ts.End, format, timeLayout), true
		case infocode.PVRTimeshiftPlayTime:
			return infoprov.FormatTime(ts.Play, format, timeLayout), true
		case infocode.PVRTimeshiftOffset:
			return infoprov.FormatDuration(ts.End.Sub(ts.Play)), true
		}
	}

	if ev := st.Event; ev != nil {
		now := s.now()
		switch code {
		case infocode.PVREpgEventTitle:
			return ev.Title, true
		case infocode.PVREpgEventDuration:
			return infoprov.FormatDuration(ev.End.Sub(ev.Start)), true
		case infocode.PVREpgEventElapsedTime:
			return infoprov.FormatDuration(clampDur(now.Sub(ev.Start), ev.End.Sub(ev.Start))), true
		case infocode.PVREpgEventRemainingTime:
			return infoprov.FormatDuration(clampDur(ev.End.Sub(now), ev.End.Sub(ev.Start))), true
		case infocode.PVREpgEventFinishTime:
			return infoprov.FormatTime(ev.End, format, "15:04"), true
		}
	}
	return "", false
}

func (s *Service) backendLabel(c cache, code infocode.Code) string {
	unknown := s.unknownBackend()
	if code == infocode.PVRTotalDiskspace {
		var total, used int64
		for _, cl := range c.clients {
			total += cl.DiskTotal
			used += cl.DiskUsed
		}
		if total <= 0 {
			return unknown
		}
		return fmt.Sprintf(s.loc.Get(localize.DiskspaceFormat), common.FormatBytes(total-used), common.FormatBytes(total))
	}
	if len(c.clients) == 0 || c.clientIdx >= len(c.clients) {
		return unknown
	}
	cl := c.clients[c.clientIdx]
	switch code {
	case infocode.PVRBackendName:
		return orUnknown(cl.Name, unknown)
	case infocode.PVRBackendVersion:
		return orUnknown(cl.Version, unknown)
	case infocode.PVRBackendHost:
		return orUnknown(cl.Host, unknown)
	case infocode.PVRBackendDiskspace:
		if cl.DiskTotal <= 0 {
			return unknown
		}
		return fmt.Sprintf(s.loc.Get(localize.DiskspaceFormat), common.FormatBytes(cl.DiskTotal-cl.DiskUsed), common.FormatBytes(cl.DiskTotal))
	case infocode.PVRBackendChannels:
		return countOrUnknown(cl.TVChannels+cl.RadioChannels, unknown)
	case infocode.PVRBackendTimers:
		return countOrUnknown(cl.Timers, unknown)
	case infocode.PVRBackendRecordings:
		return countOrUnknown(cl.Recordings, unknown)
	case infocode.PVRBackendDeletedRecordings:
		return countOrUnknown(cl.DeletedRecordings, unknown)
	case infocode.PVRBackendNumber:
		return fmt.Sprintf("%d %s %d", c.clientIdx+1, s.loc.Get(localize.Of), len(c.clients))
	}
	return unknown
}

func clampDur(d, limit time.Duration) time.Duration {
	return min(max(d, 0), limit)
}

func progress(part, whole time.Duration) int {
	if whole <= 0 {
		return 0
	}
	return int(clampDur(part, whole) * 100 / whole)
}

func (s *Service) Int(code infocode.Code) (int, bool) {
	c := s.snapshot()
	st := c.stream
	switch code {
	case infocode.PVRActualStreamSigProgress:
		return st.Signal, true
	case infocode.PVRActualStreamSNRProgress:
		return st.SNR, true
	case infocode.PVRTimeshiftProgress:
		ts := st.Timeshift
		if !ts.Active {
			return 0, true
		}
		return progress(ts.Play.Sub(ts.Start), ts.End.Sub(ts.Start)), true
	case infocode.PVREpgEventProgress:
		if st.Event == nil {
			return 0, true
		}
		return progress(s.now().Sub(st.Event.Start), st.Event.End.Sub(st.Event.Start)), true
	}
	return 0, false
}

func (s *Service) Bool(code infocode.Code) (bool, bool) {
	c := s.snapshot()
	g, code := groupOf(code)
	ti := c.groups[g]
	st := c.stream
	switch code {
	case infocode.PVRIsRecording:
		return ti.recordings > 0, true
	case infocode.PVRHasTimer:
		return ti.timers > 0, true
	case infocode.PVRHasNonRecordingTimer:
		return ti.timers > ti.recordings, true
	case infocode.PVRIsPlayingTV:
		return st.Playing && !st.Radio && !st.Recording, true
	case infocode.PVRIsPlayingRadio:
		return st.Playing && st.Radio && !st.Recording, true
	case infocode.PVRIsPlayingRecording:
		return st.Playing && st.Recording, true
	case infocode.PVRIsPlayingEncrypted:
		return st.Encrypted, true
	case infocode.PVRIsTimeshifting:
		return st.Timeshift.Active, true
	case infocode.PVRHasTVChannels:
		for _, cl := range c.clients {
			if cl.TVChannels > 0 {
				return true, true
			}
		}
		return false, true
	case infocode.PVRHasRadioChannels:
		for _, cl := range c.clients {
			if cl.RadioChannels > 0 {
				return true, true
			}
		}
		return false, true
	}
	return false, false
}

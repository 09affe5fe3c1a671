// Package pvrstatus prints what the PVR info labels currently show for a
// backend state file, once or continuously.
package pvrstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/guiinfo/cmd/cli"
	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/session"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type Params struct {
	Backend  string  `pos:"true" optional:"true" help:"PVR backend state file. Defaults to the configured one." default:""`
	Config   string  `long:"config" optional:"true" help:"Config file. Defaults to ~/.guiinfo/config.json."`
	Watch    bool    `short:"w" long:"watch" help:"Keep polling and reprint until interrupted."`
	Interval float64 `short:"i" long:"interval" optional:"true" help:"Reprint interval in seconds in watch mode. Defaults to the PVR toggle interval."`
	JSON     bool    `long:"json" help:"Output as JSON."`
	LogLevel string  `long:"log-level" optional:"true" help:"Log level: debug, info, warn, error."`
}

type field struct {
	title string
	label string
	cond  bool
}

type section struct {
	name   string
	fields []field
}

var sections = []section{
	{"Recordings", []field{
		{"Recording", "PVR.IsRecording", true},
		{"Now recording", "PVR.NowRecordingTitle", false},
		{"Channel", "PVR.NowRecordingChannel", false},
		{"Started", "PVR.NowRecordingDateTime", false},
		{"Next recording", "PVR.NextRecordingTitle", false},
		{"Next timer", "PVR.NextTimer", false},
		{"Radio recording", "PVR.RadioNowRecordingTitle", false},
	}},
	{"Backend", []field{
		{"Backend", "PVR.BackendNumber", false},
		{"Name", "PVR.BackendName", false},
		{"Version", "PVR.BackendVersion", false},
		{"Host", "PVR.BackendHost", false},
		{"Disk", "PVR.BackendDiskSpace", false},
		{"Channels", "PVR.BackendChannels", false},
		{"Timers", "PVR.BackendTimers", false},
		{"Recordings", "PVR.BackendRecordings", false},
		{"Total disk", "PVR.TotalDiscSpace", false},
	}},
	{"Stream", []field{
		{"Playing TV", "PVR.IsPlayingTV", true},
		{"Playing radio", "PVR.IsPlayingRadio", true},
		{"Client", "PVR.ActStreamClient", false},
		{"Device", "PVR.ActStreamDevice", false},
		{"Status", "PVR.ActStreamStatus", false},
		{"Signal", "PVR.ActStreamSignal", false},
		{"SNR", "PVR.ActStreamSNR", false},
		{"BER", "PVR.ActStreamBER", false},
		{"UNC", "PVR.ActStreamUNC", false},
		{"Encryption", "PVR.ActStreamEncryptionName", false},
		{"Service", "PVR.ActStreamServiceName", false},
		{"Mux", "PVR.ActStreamMux", false},
		{"Provider", "PVR.ActStreamProviderName", false},
	}},
	{"Timeshift", []field{
		{"Timeshifting", "PVR.IsTimeshift", true},
		{"Start", "PVR.TimeshiftStart", false},
		{"End", "PVR.TimeshiftEnd", false},
		{"Offset", "PVR.TimeshiftOffset", false},
		{"Progress", "PVR.TimeshiftProgress", false},
	}},
	{"EPG", []field{
		{"Event", "PVR.EpgEventTitle", false},
		{"Duration", "PVR.EpgEventDuration", false},
		{"Elapsed", "PVR.EpgEventElapsedTime", false},
		{"Remaining", "PVR.EpgEventRemainingTime", false},
		{"Progress", "PVR.EpgEventProgress", false},
	}},
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "pvr [backend-file]",
		Short: "Show PVR recording, backend and stream info",
		Long: `Poll a PVR backend state file and print what the PVR info labels show.

The file is JSON with "clients", "timers" and "stream". With --watch the
file is followed for changes and desktop notifications are sent for new
recordings when enabled in the config.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := Run(ctx, params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "pvr: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, out io.Writer) error {
	s, closeFn, err := cli.Open(ctx, cli.Options{
		ConfigPath: params.Config,
		LogLevel:   params.LogLevel,
		Session:    session.Options{PVRBackend: params.Backend},
	})
	if err != nil {
		return err
	}
	defer closeFn()

	if !params.Watch {
		s.PVR.Cycle(ctx)
		return render(out, s, params.JSON)
	}

	s.Start(ctx)
	interval := time.Duration(params.Interval * float64(time.Second))
	if interval <= 0 {
		interval = s.Config.PVR.ToggleInterval()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := render(out, s, params.JSON); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Snapshot resolves every field, keyed by section then title.
func Snapshot(s *session.Session) map[string]map[string]string {
	snap := map[string]map[string]string{}
	for _, sec := range sections {
		values := map[string]string{}
		for _, f := range sec.fields {
			values[f.title] = value(s, f)
		}
		snap[sec.name] = values
	}
	return snap
}

func value(s *session.Session, f field) string {
	if f.cond {
		return fmt.Sprint(s.Condition(f.label, nil))
	}
	return s.Label(f.label, nil)
}

func render(out io.Writer, s *session.Session, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(Snapshot(s))
	}
	width, _ := cli.TerminalSize()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(width)
	t.SetTitle("PVR " + time.Now().Format("15:04:05"))
	for i, sec := range sections {
		if i > 0 {
			t.AppendSeparator()
		}
		t.AppendRow(table.Row{text.Bold.Sprint(sec.name), ""})
		for _, f := range sec.fields {
			v := value(s, f)
			switch {
			case f.cond && v == "true":
				v = text.FgGreen.Sprint(v)
			case v == "" || f.cond:
				v = text.FgHiBlack.Sprint(v)
			}
			t.AppendRow(table.Row{"  " + f.title, v})
		}
	}
	t.Render()
	return nil
}

// Package query resolves labels and conditions against a session built from
// a scenario file and prints the results.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/guiinfo/cmd/cli"
	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/session"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type Params struct {
	Labels     []string `pos:"true" optional:"true" help:"Labels to resolve, e.g. Player.Title or '$INFO[ListItem.Label] ($INFO[ListItem.Year])'."`
	Conditions []string `short:"c" long:"condition" optional:"true" help:"Conditions to evaluate, e.g. 'Player.HasMedia + !Player.Paused'."`
	Config     string   `long:"config" optional:"true" help:"Config file. Defaults to ~/.guiinfo/config.json."`
	Scenario   string   `short:"s" long:"scenario" optional:"true" help:"Scenario JSON with player, items and skin state."`
	Dir        string   `short:"d" long:"dir" optional:"true" help:"Directory of .nfo files to list instead of the scenario items."`
	Item       int      `short:"i" long:"item" help:"Resolve against the listed item at this 1-based position instead of the focused one." default:"0"`
	Refresh    bool     `short:"r" long:"refresh" help:"Poll system and PVR state once before resolving." default:"true"`
	JSON       bool     `long:"json" help:"Output as JSON."`
	LogLevel   string   `long:"log-level" optional:"true" help:"Log level: debug, info, warn, error."`
}

// Result is one resolved label or condition.
type Result struct {
	Kind       string `json:"kind"`
	Expression string `json:"expression"`
	Info       string `json:"info,omitempty"`
	Value      string `json:"value"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "query [labels...]",
		Short: "Resolve info labels and conditions",
		Long: `Build a GUI session from config and a scenario file, then resolve each
label and evaluate each condition against it.

Labels are plain info names (Player.Title, Container(50).NumItems) or
composite strings with $INFO[...] and $LOCALIZE[...] parts.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(cmd.Context(), params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "query: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(params.Labels) == 0 && len(params.Conditions) == 0 {
		return fmt.Errorf("nothing to resolve, give labels or --condition")
	}
	s, closeFn, err := cli.Open(ctx, cli.Options{
		ConfigPath:   params.Config,
		ScenarioPath: params.Scenario,
		NFODir:       params.Dir,
		LogLevel:     params.LogLevel,
	})
	if err != nil {
		return err
	}
	defer closeFn()
	if params.Refresh {
		s.Refresh(ctx)
	}
	s.Tick()

	var item *listitem.Item
	if params.Item != 0 {
		items := s.View.Items()
		if params.Item < 0 || params.Item > len(items) {
			return fmt.Errorf("item %d out of range, %d items listed", params.Item, len(items))
		}
		item = items[params.Item-1]
	}
	results := Resolve(s, item, params.Labels, params.Conditions)
	if params.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	render(out, results)
	return nil
}

// Resolve evaluates labels then conditions in the topmost window. A nil
// item means the focused list item.
func Resolve(s *session.Session, item *listitem.Item, labels, conditions []string) []Result {
	results := make([]Result, 0, len(labels)+len(conditions))
	for _, l := range labels {
		results = append(results, Result{
			Kind:       "label",
			Expression: l,
			Info:       describe(s, l),
			Value:      s.Label(l, item),
		})
	}
	for _, c := range conditions {
		results = append(results, Result{
			Kind:       "condition",
			Expression: c,
			Value:      fmt.Sprint(s.Condition(c, item)),
		})
	}
	return results
}

// describe shows how a plain label translated, empty for composite ones.
func describe(s *session.Session, label string) string {
	if strings.Contains(label, "$") {
		return ""
	}
	info, err := s.Info.Translate(label)
	if err != nil {
		return "invalid: " + err.Error()
	}
	d := info.Code.String()
	if info.Data1 != 0 || info.Data2 != 0 {
		d += fmt.Sprintf(" (%d, %d)", info.Data1, info.Data2)
	}
	if info.Data3 != "" {
		d += fmt.Sprintf(" %q", info.Data3)
	}
	return d
}

func render(out io.Writer, results []Result) {
	width, _ := cli.TerminalSize()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(width)
	t.AppendHeader(table.Row{"Kind", "Expression", "Info", "Value"})
	for _, r := range results {
		value := r.Value
		switch {
		case r.Kind == "condition" && r.Value == "true":
			value = text.FgGreen.Sprint(value)
		case r.Kind == "condition":
			value = text.FgHiBlack.Sprint(value)
		case r.Value == "":
			value = text.FgHiBlack.Sprint("(empty)")
		}
		t.AppendRow(table.Row{r.Kind, r.Expression, r.Info, value})
	}
	t.Render()
}

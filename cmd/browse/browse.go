// Package browse shows a scenario's listing in the terminal, driven by the
// same container, window and info code the other commands query.
package browse

import (
	"context"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/guiinfo/cmd/cli"
	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/container"
	"github.com/gigurra/guiinfo/cmd/gui/session"
	"github.com/spf13/cobra"
)

type Params struct {
	Scenario string   `pos:"true" optional:"true" help:"Scenario JSON with the items to list." default:""`
	Config   string   `long:"config" optional:"true" help:"Config file. Defaults to ~/.guiinfo/config.json."`
	Dir      string   `short:"d" long:"dir" optional:"true" help:"Directory of .nfo files to list instead of the scenario items."`
	Layout   string   `short:"l" long:"layout" help:"Container layout." alts:"list,panel,wraplist" default:"list"`
	Columns  int      `short:"c" long:"columns" help:"Columns of a panel layout." default:"4"`
	Fixed    int      `long:"fixed" help:"Focus row of a wraplist layout." default:"2"`
	Footer   []string `short:"f" long:"footer" optional:"true" help:"Labels shown under the list; defaults to position and player title."`
	LogLevel string   `long:"log-level" optional:"true" help:"Log level for ~/.guiinfo/guiinfo.log."`
}

// chrome is the header, separator and status lines around the list.
const chrome = 4

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "browse [scenario]",
		Short: "Browse a listing interactively",
		Long: `Browse the items of a scenario in a list, panel or wrap list.

Arrows move, PgUp/PgDn page, Home/End jump, letters jump by sort letter,
Enter runs the click actions, Esc closes dialogs, Ctrl+Y copies the
focused path, Ctrl+C quits.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "browse: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	width, height := cli.TerminalSize()
	opts, err := sessionOptions(params, height-chrome-len(footers(params)))
	if err != nil {
		return err
	}
	s, closeFn, err := cli.Open(ctx, cli.Options{
		ConfigPath:   params.Config,
		ScenarioPath: params.Scenario,
		NFODir:       params.Dir,
		LogLevel:     params.LogLevel,
		LogToFile:    true,
		Quiet:        true,
		Session:      opts,
	})
	if err != nil {
		return err
	}
	defer closeFn()
	s.Start(ctx)

	m := newModel(s, footers(params), width, height)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func footers(params *Params) []string {
	if len(params.Footer) > 0 {
		return params.Footer
	}
	return []string{
		"$INFO[Container.CurrentItem]/$INFO[Container.NumItems]$INFO[Container.CurrentPage, · page ]",
		"$INFO[Player.Title,Playing: ]$INFO[Player.Time, ]$INFO[Player.Duration, / ]",
	}
}

func sessionOptions(params *Params, rows int) (session.Options, error) {
	strategy, ok := container.StrategyByName(params.Layout, params.Columns, params.Fixed)
	if !ok {
		return session.Options{}, fmt.Errorf("unknown layout %q", params.Layout)
	}
	width := 1.0
	if _, panel := strategy.(container.Panel); panel {
		width = float64(max(params.Columns, 1))
	}
	return session.Options{
		Strategy: strategy,
		Width:    width,
		Height:   float64(max(rows, 1)),
		Layouts: []container.Layout{{
			Width:  1,
			Height: 1,
			Labels: []string{"$INFO[ListItem.Label]", "$INFO[ListItem.Label2]"},
		}},
	}, nil
}

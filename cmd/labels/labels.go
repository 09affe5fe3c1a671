// Package labels lists the info labels the engine understands.
package labels

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/guiinfo/cmd/cli"
	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Filter string `pos:"true" optional:"true" help:"Only names containing this text." default:""`
	Range  string `short:"r" long:"range" optional:"true" help:"Only this range, e.g. player, listitem, pvr."`
	JSON   bool   `long:"json" help:"Output as JSON."`
}

type Label struct {
	Name  string `json:"name"`
	Code  uint32 `json:"code"`
	Range string `json:"range"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "labels [filter]",
		Short:       "List known info labels",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "labels: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, out io.Writer) error {
	if params.Range != "" && !lo.ContainsBy(infocode.Ranges(), func(r infocode.Range) bool {
		return r.Name == strings.ToLower(params.Range)
	}) {
		return fmt.Errorf("unknown range %q", params.Range)
	}
	found := List(params.Filter, params.Range)
	if params.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}
	width, _ := cli.TerminalSize()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(width)
	t.AppendHeader(table.Row{"Name", "Code", "Range"})
	for _, l := range found {
		t.AppendRow(table.Row{l.Name, l.Code, l.Range})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d labels", len(found))})
	t.Render()
	return nil
}

// List returns the registered names matching filter and rangeName, both
// case-insensitive and optional.
func List(filter, rangeName string) []Label {
	filter = strings.ToLower(filter)
	rangeName = strings.ToLower(rangeName)
	var out []Label
	for _, e := range infocode.Entries() {
		r, _ := infocode.RangeOf(e.Code)
		if rangeName != "" && r.Name != rangeName {
			continue
		}
		if filter != "" && !strings.Contains(e.Name, filter) {
			continue
		}
		out = append(out, Label{Name: e.Name, Code: uint32(e.Code), Range: r.Name})
	}
	return out
}

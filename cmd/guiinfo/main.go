package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/guiinfo/cmd/browse"
	"github.com/gigurra/guiinfo/cmd/labels"
	"github.com/gigurra/guiinfo/cmd/pvrstatus"
	"github.com/gigurra/guiinfo/cmd/query"
	"github.com/spf13/cobra"
)

const (
	groupInfo        = "info"
	groupInteractive = "interactive"
)

func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "guiinfo",
		Short:   "GUI info labels, conditions and containers from the command line",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupInfo, Title: "Info:"},
			{ID: groupInteractive, Title: "Interactive:"},
		},
		SubCmds: []*cobra.Command{
			withGroup(query.Cmd(), groupInfo),
			withGroup(labels.Cmd(), groupInfo),
			withGroup(pvrstatus.Cmd(), groupInteractive),
			withGroup(browse.Cmd(), groupInteractive),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}

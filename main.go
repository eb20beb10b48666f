package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/bigchar/cmd/bigchar"
	"github.com/gigurra/bigchar/cmd/bigchar/assets"
	"github.com/gigurra/bigchar/cmd/common"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[bigchar.Params]{
		Use:   "bigchar",
		Short: "Show a giant letter and play its song for every key pressed",
		Long: `A full-screen alphabet toy for small children.

Letters show the upper and lower case pair and play music/<LETTER>.ogg,
digits show the digit and play music/<DIGIT>.ogg. Keypad * + - . and
backspace show a symbol without sound. The bar at the bottom shows how
much of the day has passed.

Press Ctrl+C to exit.`,
		Version:     appVersion(),
		ParamEnrich: common.DefaultParamEnricher(),
		SubCmds: []*cobra.Command{
			assets.Cmd(),
			bigchar.KeysCmd(),
		},
		RunFunc: bigchar.RunFunc,
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}

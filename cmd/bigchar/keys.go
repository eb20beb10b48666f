package bigchar

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/bigchar/cmd/bigchar/dispatch"
	"github.com/gigurra/bigchar/cmd/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func KeysCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:         "keys",
		Short:       "Show which keys are recognised and what they do",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *boa.NoParams, cmd *cobra.Command, args []string) {
			PrintKeys(os.Stdout)
		},
	}.ToCobra()
}

type keyGroup struct {
	name     string
	from, to int
}

var keyGroups = []keyGroup{
	{"Letters (lowercase)", dispatch.KeyLowerA, dispatch.KeyLowerZ},
	{"Letters (uppercase)", dispatch.KeyUpperA, dispatch.KeyUpperZ},
	{"Digits", dispatch.Key0, dispatch.Key9},
	{"Keypad digits", dispatch.KeyKP0, dispatch.KeyKP9},
	{"Keypad *", dispatch.KeyKPMultiply, dispatch.KeyKPMultiply},
	{"Keypad +", dispatch.KeyKPAdd, dispatch.KeyKPAdd},
	{"Keypad -", dispatch.KeyKPSubtract, dispatch.KeyKPSubtract},
	{"Keypad .", dispatch.KeyKPDecimal, dispatch.KeyKPDecimal},
	{"Backspace", dispatch.KeyBackSpace, dispatch.KeyBackSpace},
	{"Super", dispatch.KeySuperL, dispatch.KeySuperL},
}

// PrintKeys renders the key table, one row per group of codes.
func PrintKeys(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Keys", "Codes", "Shows", "Plays"})

	for _, g := range keyGroups {
		first := dispatch.Classify(g.from)
		last := dispatch.Classify(g.to)
		if len(first) == 0 || len(last) == 0 {
			continue
		}

		codes := fmt.Sprint(g.from)
		shows := first[0].Text
		plays := first[0].Identifier
		if g.to != g.from {
			codes = fmt.Sprintf("%d-%d", g.from, g.to)
			shows = first[0].Text + " ... " + last[0].Text
			plays = first[0].Identifier + " ... " + last[0].Identifier
		}
		if plays == "" {
			plays = "-"
		}
		t.AppendRow(table.Row{g.name, codes, shows, plays})
	}
	t.Render()
}

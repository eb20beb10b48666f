package bigchar

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/bigchar/cmd/bigchar/assets"
	"github.com/gigurra/bigchar/cmd/bigchar/daylight"
	"github.com/gigurra/bigchar/cmd/bigchar/dispatch"
	"github.com/gigurra/bigchar/cmd/bigchar/pipeline"
	"github.com/gigurra/bigchar/cmd/bigchar/playback"
	"github.com/gigurra/bigchar/cmd/bigchar/ui"
	"github.com/gigurra/bigchar/cmd/common"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ErrNotATerminal = errors.New("stdout is not a terminal")

type Params struct {
	MusicDir   string `short:"d" optional:"true" help:"Directory holding A.ogg ... Z.ogg and 0.ogg ... 9.ogg (defaults to ./music next to the executable)."`
	Ext        string `short:"e" optional:"true" help:"Audio file extension (ogg, wav or mp3 content)." default:"ogg"`
	Wake       int    `optional:"true" help:"Hour the day starts, left end of the progress bar." default:"6"`
	Bedtime    int    `optional:"true" help:"Hour the day ends, right end of the progress bar." default:"20"`
	Background string `short:"b" optional:"true" help:"Background color (ANSI number or #hex)." default:"2"`
	Foreground string `short:"f" optional:"true" help:"Foreground color (ANSI number or #hex)." default:"0"`
	LogFile    string `optional:"true" help:"Log file (defaults to bigchar.log in the user cache dir)."`
	Debug      bool   `optional:"true" help:"Log playback events at debug level." default:"false"`
}

// RunFunc is the root command body.
func RunFunc(params *Params, cmd *cobra.Command, args []string) {
	common.ExitOnError("bigchar", Run(params))
}

func Run(params *Params) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	day := daylight.Day{Wake: params.Wake, Bedtime: params.Bedtime}
	if err := day.Validate(); err != nil {
		return err
	}

	logPath := params.LogFile
	if logPath == "" {
		logPath = common.DefaultLogPath()
	}
	logCloser, err := common.SetupLogging(logPath, params.Debug)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "bigchar: logging disabled: %v\n", err)
	}
	defer func() { _ = logCloser.Close() }()

	dir := params.MusicDir
	if dir == "" {
		dir = assets.DefaultDir()
	}
	if missing := assets.Missing(assets.Scan(dir, params.Ext)); len(missing) > 0 {
		slog.Warn("some audio files are missing", "dir", dir, "missing", len(missing))
	}
	if !pipeline.AudioAvailable {
		slog.Warn("audio playback not available in this build")
	}

	p := pipeline.New(pipeline.DefaultSink(pipeline.DefaultSampleRate), pipeline.DefaultSampleRate)
	defer func() { _ = p.Close() }()

	player := playback.New(p, dir, params.Ext)
	screen := &ui.Screen{}
	dispatcher := dispatch.New(screen, player, day)
	dispatcher.RefreshProgress()

	model := ui.NewModel(screen, dispatcher, player, ui.Colors{
		Background: params.Background,
		Foreground: params.Foreground,
	})

	slog.Info("starting", "dir", dir, "ext", params.Ext)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	player.Stop()
	return nil
}

package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/bigchar/cmd/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type Params struct {
	MusicDir string `short:"d" optional:"true" help:"Directory holding the audio files (defaults to ./music next to the executable)."`
	Ext      string `short:"e" optional:"true" help:"Audio file extension." default:"ogg"`
	Watch    bool   `short:"w" optional:"true" help:"Keep running and re-print when the directory changes." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "assets",
		Short:       "List which letter and digit audio files are present",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.ExitOnError("assets", run(cmd.Context(), params, os.Stdout))
		},
	}.ToCobra()
}

func run(ctx context.Context, params *Params, out io.Writer) error {
	dir := params.MusicDir
	if dir == "" {
		dir = DefaultDir()
	}

	Render(out, dir, Scan(dir, params.Ext))
	if !params.Watch {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Watch(ctx, dir, func() {
		_, _ = fmt.Fprint(out, "\n")
		Render(out, dir, Scan(dir, params.Ext))
	})
}

// Render prints the catalogue as a table.
func Render(out io.Writer, dir string, entries []Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "File", "Size"})

	for _, e := range entries {
		if e.Present {
			t.AppendRow(table.Row{
				text.FgGreen.Sprint(e.Identifier),
				filepath.Base(e.Path),
				common.FormatSize(e.Size),
			})
		} else {
			t.AppendRow(table.Row{
				text.FgHiRed.Sprint(e.Identifier),
				filepath.Base(e.Path),
				text.FgHiBlack.Sprint("missing"),
			})
		}
	}
	t.Render()

	missing := Missing(entries)
	if len(missing) == 0 {
		_, _ = fmt.Fprintf(out, "All %d files present in %s\n", len(entries), dir)
		return
	}
	ids := make([]string, len(missing))
	for i, e := range missing {
		ids[i] = e.Identifier
	}
	_, _ = fmt.Fprintf(out, "%d of %d missing in %s: %s\n", len(missing), len(entries), dir, strings.Join(ids, " "))
}

// Watch calls onChange whenever files are created, removed or renamed in dir,
// until ctx is done. Bursts of events are collapsed into a single call.
func Watch(ctx context.Context, dir string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

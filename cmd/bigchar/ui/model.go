package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/bigchar/cmd/bigchar/dispatch"
	"github.com/gigurra/bigchar/cmd/bigchar/pipeline"
	"github.com/gigurra/bigchar/cmd/bigchar/playback"
)

// Colors are lipgloss color strings: ANSI numbers or hex.
type Colors struct {
	Background string
	Foreground string
}

var DefaultColors = Colors{Background: "2", Foreground: "0"}

type busMsg pipeline.Message

type Model struct {
	screen     *Screen
	dispatcher *dispatch.Dispatcher
	player     *playback.Controller

	textStyle lipgloss.Style
	barStyle  lipgloss.Style
	bg        lipgloss.Color

	width  int
	height int
}

func NewModel(screen *Screen, dispatcher *dispatch.Dispatcher, player *playback.Controller, colors Colors) Model {
	bg := lipgloss.Color(colors.Background)
	fg := lipgloss.Color(colors.Foreground)
	return Model{
		screen:     screen,
		dispatcher: dispatcher,
		player:     player,
		textStyle:  lipgloss.NewStyle().Bold(true).Foreground(fg).Background(bg),
		barStyle:   lipgloss.NewStyle().Foreground(fg).Background(bg),
		bg:         bg,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForBus(m.player.Messages()), tea.EnterAltScreen, tea.HideCursor)
}

// waitForBus turns the next pipeline message into a tea message, so the
// controller is only ever touched from the UI loop.
func waitForBus(bus <-chan pipeline.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-bus
		if !ok {
			return nil
		}
		return busMsg(msg)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.player.Stop()
			return m, tea.Quit
		}
		m.dispatcher.HandleKey(Keysym(msg))
		return m, nil

	case busMsg:
		m.player.HandleMessage(pipeline.Message(msg))
		return m, waitForBus(m.player.Messages())
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bodyHeight := max(1, m.height-1)
	var body string
	if m.screen.Text != "" {
		scale := Scale(m.screen.Text, m.width, bodyHeight)
		body = m.textStyle.Render(strings.Join(RenderText(m.screen.Text, scale), "\n"))
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(m.bg))

	return lipgloss.JoinVertical(lipgloss.Left, body, m.barStyle.Render(ProgressBar(m.screen.Progress, m.width)))
}

// ProgressBar draws fraction as a bar of the given width.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(1, max(0, fraction))
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

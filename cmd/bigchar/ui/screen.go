package ui

// Screen is the display state: the text shown and the day progress.
type Screen struct {
	Text     string
	Progress float64
}

func (s *Screen) SetText(text string) {
	s.Text = text
}

func (s *Screen) SetProgress(fraction float64) {
	s.Progress = min(1, max(0, fraction))
}

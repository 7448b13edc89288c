package app

import (
	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

// statusLine is the one-line message under the panels. A message stays
// until the next one replaces it.
type statusLine struct {
	text  string
	isErr bool
}

// Set shows an informational message.
func (s *statusLine) Set(text string) {
	s.text = text
	s.isErr = false
}

// SetError shows an error message.
func (s *statusLine) SetError(text string) {
	s.text = text
	s.isErr = true
}

// Clear removes the message.
func (s *statusLine) Clear() {
	s.text = ""
	s.isErr = false
}

// Text returns the current message.
func (s *statusLine) Text() string {
	return s.text
}

// IsError reports whether the current message is an error.
func (s *statusLine) IsError() bool {
	return s.isErr
}

func (s *statusLine) View(width int) string {
	if width <= 0 {
		return ""
	}
	text := render.Truncate(" "+render.Sanitize(s.text), width)
	st := styles.T().S()
	if s.isErr {
		return st.Error.Render(render.Pad(text, width))
	}
	return st.Muted.Render(render.Pad(text, width))
}

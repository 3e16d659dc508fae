package menu

import (
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/Luktock/recipe-selection-system/internal/logging"
)

// ErrAborted is returned by a Prompter when the user cancels the current line.
var ErrAborted = errors.New("prompt aborted")

// Prompter reads one line of input after showing prompt. It returns io.EOF
// when input is exhausted and ErrAborted when the line was cancelled.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LinePrompter is a Prompter with line editing and persistent history.
type LinePrompter struct {
	state       *liner.State
	historyFile string
}

// NewLinePrompter takes over the terminal. historyFile may be empty to
// disable history persistence. Close must be called to restore the terminal.
func NewLinePrompter(historyFile string) *LinePrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logging.Debug().Err(err).Str("file", historyFile).Msg("Ignoring unreadable history")
			}
			f.Close()
		}
	}
	return &LinePrompter{state: state, historyFile: historyFile}
}

func (p *LinePrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves the history and restores the terminal.
func (p *LinePrompter) Close() error {
	if p.historyFile != "" {
		if f, err := os.Create(p.historyFile); err != nil {
			logging.Warn().Err(err).Str("file", p.historyFile).Msg("Failed to save history")
		} else {
			if _, err := p.state.WriteHistory(f); err != nil {
				logging.Warn().Err(err).Str("file", p.historyFile).Msg("Failed to save history")
			}
			f.Close()
		}
	}
	return p.state.Close()
}

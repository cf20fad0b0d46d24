package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputExhausted is returned by Prompt once no more input can be read.
var ErrInputExhausted = errors.New("input exhausted")

// Console is the line-oriented interface the exercises talk to.
type Console interface {
	// Prompt writes text and reads one line of input without its trailing newline.
	Prompt(text string) (string, error)
	// Print writes one line of output.
	Print(line string)
}

// Terminal implements Console over a reader and a writer, normally stdin/stdout.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
	done   bool
}

// NewTerminal creates a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (t *Terminal) Prompt(text string) (string, error) {
	fmt.Fprint(t.writer, text)
	if t.done {
		return "", ErrInputExhausted
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		t.done = true
		if line == "" {
			// Keep the terminal tidy when input ends mid-prompt.
			fmt.Fprintln(t.writer)
			return "", ErrInputExhausted
		}
	}
	return trimNewline(line), nil
}

func (t *Terminal) Print(line string) {
	fmt.Fprintln(t.writer, line)
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Scripted implements Console with predetermined input for testing.
// Prompts and printed lines are both recorded, in order, in Transcript.
type Scripted struct {
	mu         sync.Mutex
	inputs     []string
	idx        int
	Prompts    []string
	Output     []string
	Transcript []string
}

// NewScripted creates a Scripted console that answers prompts with inputs.
func NewScripted(inputs ...string) *Scripted {
	return &Scripted{inputs: inputs}
}

func (s *Scripted) Prompt(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prompts = append(s.Prompts, text)
	s.Transcript = append(s.Transcript, text)
	if s.idx >= len(s.inputs) {
		return "", ErrInputExhausted
	}
	line := s.inputs[s.idx]
	s.idx++
	return line, nil
}

func (s *Scripted) Print(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Output = append(s.Output, line)
	s.Transcript = append(s.Transcript, line)
}

// Remaining reports how many scripted inputs have not been consumed.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs) - s.idx
}

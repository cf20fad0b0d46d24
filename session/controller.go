// Package session holds the loop-continuation state machine shared by the
// exercises.
package session

import (
	"strings"
)

// State is the controller's state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

// Controller decides whether another round is played. It starts Running;
// Stopped is terminal.
type Controller struct {
	state  State
	accept []string
	err    error
	Tally  Tally
}

// NewController creates a Running controller that keeps going on any of the
// accepted answers, compared case-insensitively after trimming.
func NewController(accept ...string) *Controller {
	return &Controller{state: Running, accept: accept}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Running reports whether another round should be played.
func (c *Controller) Running() bool {
	return c.state == Running
}

// Continue evaluates an answer to the "play again?" prompt.
func (c *Controller) Continue(answer string) State {
	if c.state == Stopped {
		return c.state
	}
	answer = strings.TrimSpace(answer)
	for _, token := range c.accept {
		if strings.EqualFold(answer, token) {
			return c.state
		}
	}
	c.state = Stopped
	return c.state
}

// Fail stops the controller because a round could not be played.
func (c *Controller) Fail(err error) State {
	if c.err == nil {
		c.err = err
	}
	c.state = Stopped
	return c.state
}

// Stop ends the loop without an error, for example when input runs out.
func (c *Controller) Stop() State {
	c.state = Stopped
	return c.state
}

// Err returns the error passed to the first Fail, if any.
func (c *Controller) Err() error {
	return c.err
}

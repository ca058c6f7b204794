// Package command holds the slash command table and its dispatcher. The
// chat adapter registers Commands() with the platform and forwards each
// interaction to Dispatch.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/soundboard/internal/domain"
	"github.com/heartmarshall/soundboard/internal/metrics"
)

// ErrUnknownCommand is returned by Dispatch for names not in the table.
var ErrUnknownCommand = errors.New("unknown command")

// Option is an integer argument of a command.
type Option struct {
	Name        string
	Description string
	Required    bool
	Min         int
	Max         int
}

// Request is one invocation.
type Request struct {
	Name    string
	Options map[string]int64
	UserID  string
}

// Int returns the named option and whether it was supplied.
func (r Request) Int(name string) (int, bool) {
	v, ok := r.Options[name]
	return int(v), ok
}

// Response is the reply sent back to the invoking user.
type Response struct {
	Content   string
	Ephemeral bool
	Embed     *Embed
}

// Embed is a platform-neutral rich message.
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// HandlerFunc handles one command invocation.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

// Command is one entry of the table.
type Command struct {
	Name        string
	Description string
	Options     []Option
	Handle      HandlerFunc
}

// Registry routes requests by command name.
type Registry struct {
	commands []Command
	byName   map[string]Command
}

// NewRegistry builds a registry from cmds. Names must be unique and every
// command needs a handler.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make([]Command, 0, len(cmds)),
		byName:   make(map[string]Command, len(cmds)),
	}
	for _, c := range cmds {
		if c.Name == "" {
			return nil, errors.New("command: empty name")
		}
		if c.Handle == nil {
			return nil, fmt.Errorf("command %q: no handler", c.Name)
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, fmt.Errorf("command %q: duplicate name", c.Name)
		}
		r.byName[c.Name] = c
		r.commands = append(r.commands, c)
	}
	return r, nil
}

// Commands returns the table in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Dispatch runs the handler for req.Name. Validation and not-found errors
// become ephemeral replies; other errors are returned to the caller.
func (r *Registry) Dispatch(ctx context.Context, req Request) (Response, error) {
	c, ok := r.byName[req.Name]
	if !ok {
		metrics.CommandsHandled.WithLabelValues("unknown", "unknown").Inc()
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownCommand, req.Name)
	}

	resp, err := c.Handle(ctx, req)
	if err == nil {
		metrics.CommandsHandled.WithLabelValues(c.Name, "ok").Inc()
		return resp, nil
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.CommandsHandled.WithLabelValues(c.Name, "invalid").Inc()
		return Response{Content: "❌ " + verr.Messages(), Ephemeral: true}, nil
	case errors.Is(err, domain.ErrNotFound):
		metrics.CommandsHandled.WithLabelValues(c.Name, "invalid").Inc()
		return Response{Content: "❌ Not found.", Ephemeral: true}, nil
	default:
		metrics.CommandsHandled.WithLabelValues(c.Name, "error").Inc()
		return Response{}, fmt.Errorf("command %s: %w", c.Name, err)
	}
}

// SPDX-License-Identifier: MIT

// Package queueapp implements the queue command-line application:
//
//	queueapp push <number> | get | length [...]
//
// Operations run left to right against a queue owned by the Application,
// so repeated Run calls on one Application see each other's pushes.
// Every failure is reported as text; Run never panics on user input.
package queueapp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/tmatrix/queue"
)

// Application owns the queue and formats results for the terminal.
type Application struct {
	q      *queue.Queue[float64]
	logger *zap.Logger
}

// Option customizes an Application.
type Option func(*Application)

// WithLogger sets the logger used for per-operation debug records.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("queueapp: WithLogger(nil)")
	}
	return func(a *Application) {
		a.logger = l
	}
}

// New returns an Application with an empty queue.
func New(opts ...Option) *Application {
	a := &Application{
		q:      queue.New[float64](0),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Len returns the number of values currently queued.
func (a *Application) Len() int { return a.q.Len() }

// Run executes argv (args[0] is the program name) and returns the text to
// print. Without operations it returns the usage message. A malformed
// command line is rejected as a whole before any operation runs.
func (a *Application) Run(args []string) string {
	appName := "queueapp"
	if len(args) > 0 && args[0] != "" {
		appName = args[0]
	}
	if len(args) <= 1 {
		return help(appName, "")
	}

	cmds, err := parse(args[1:])
	if err != nil {
		a.logger.Debug("rejected command line", zap.Strings("args", args[1:]), zap.Error(err))
		if errors.Is(err, ErrArgumentCount) {
			return help(appName, message(err))
		}
		return message(err)
	}

	out := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		line, ok := a.exec(cmd)
		out = append(out, line)
		if !ok {
			break
		}
	}

	return strings.Join(out, "\n")
}

// exec applies one command; ok is false when processing must stop.
func (a *Application) exec(cmd command) (line string, ok bool) {
	switch cmd.op {
	case OpPush:
		a.q.Push(cmd.value)
		a.logger.Debug("push", zap.Float64("value", cmd.value), zap.Int("len", a.q.Len()))
		return "Pushed: " + formatNumber(cmd.value), true
	case OpGet:
		v, err := a.q.Pop()
		if err != nil {
			a.logger.Debug("get on empty queue")
			return msgEmpty, false
		}
		a.logger.Debug("get", zap.Float64("value", v), zap.Int("len", a.q.Len()))
		return "Got: " + formatNumber(v), true
	case OpLength:
		return "Length: " + strconv.Itoa(a.q.Len()), true
	default:
		return fmt.Sprintf("unsupported operation %v", cmd.op), false
	}
}

// help renders an optional leading message followed by usage.
func help(appName, msg string) string {
	var b strings.Builder
	if msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}
	b.WriteString("This is a queue application.\n")
	b.WriteString("Please provide arguments in the following format:\n\n")
	fmt.Fprintf(&b, "  $ %s push <number> | get | length [...]\n\n", appName)
	b.WriteString("Where operations run left to right against one queue:\n")
	b.WriteString("  push <number>  appends a number to the tail\n")
	b.WriteString("  get            removes and prints the head\n")
	b.WriteString("  length         prints the number of queued values\n")

	return b.String()
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

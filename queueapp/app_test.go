package queueapp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tmatrix/queueapp"
)

func TestRun_NoArgumentsPrintsHelp(t *testing.T) {
	app := queueapp.New()

	out := app.Run([]string{"appname"})
	require.True(t, strings.HasPrefix(out, "This is a queue application."))
	require.Contains(t, out, "$ appname push <number> | get | length")

	require.Contains(t, app.Run(nil), "$ queueapp push")
}

func TestRun_Operations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"push", []string{"app", "push", "5"}, "Pushed: 5"},
		{"push get", []string{"app", "push", "5", "get"}, "Pushed: 5\nGot: 5"},
		{"fifo", []string{"app", "push", "1", "push", "2.5", "get", "get"}, "Pushed: 1\nPushed: 2.5\nGot: 1\nGot: 2.5"},
		{"length", []string{"app", "push", "-3", "push", "4", "length"}, "Pushed: -3\nPushed: 4\nLength: 2"},
		{"empty length", []string{"app", "length"}, "Length: 0"},
		{"get on empty stops", []string{"app", "get", "push", "1"}, "Queue is empty!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, queueapp.New().Run(tc.args))
		})
	}
}

func TestRun_StatePersistsAcrossCalls(t *testing.T) {
	app := queueapp.New()
	require.Equal(t, "Pushed: 7", app.Run([]string{"app", "push", "7"}))
	require.Equal(t, 1, app.Len())
	require.Equal(t, "Length: 1", app.Run([]string{"app", "length"}))
	require.Equal(t, "Got: 7", app.Run([]string{"app", "get"}))
	require.Equal(t, 0, app.Len())
}

func TestRun_Errors(t *testing.T) {
	app := queueapp.New()

	require.Equal(t, "Wrong operation format!", app.Run([]string{"app", "pop"}))
	require.Equal(t, "Wrong operation format!", app.Run([]string{"app", "PUSH", "1"}))
	require.Equal(t, "Wrong number format!", app.Run([]string{"app", "push", "five"}))
	require.Equal(t, "Wrong number format!", app.Run([]string{"app", "push", "NaN"}))

	out := app.Run([]string{"app", "push"})
	require.True(t, strings.HasPrefix(out, "ERROR: Should be 1 argument for push.\n\n"))
	require.Contains(t, out, "This is a queue application.")

	// a rejected command line runs nothing
	require.Equal(t, "Wrong operation format!", app.Run([]string{"app", "push", "1", "oops"}))
	require.Equal(t, 0, app.Len())
}

func TestParseHelpers(t *testing.T) {
	op, err := queueapp.ParseOperation("length")
	require.NoError(t, err)
	require.Equal(t, queueapp.OpLength, op)
	require.Equal(t, "length", op.String())

	_, err = queueapp.ParseOperation("")
	require.ErrorIs(t, err, queueapp.ErrWrongOperation)

	v, err := queueapp.ParseNumber("-1.25e2")
	require.NoError(t, err)
	require.Equal(t, -125.0, v)
	_, err = queueapp.ParseNumber("+Inf")
	require.ErrorIs(t, err, queueapp.ErrWrongNumber)

	require.ErrorIs(t, queueapp.ValidateNumberOfArguments(queueapp.OpPush, nil), queueapp.ErrArgumentCount)
	require.NoError(t, queueapp.ValidateNumberOfArguments(queueapp.OpPush, []string{"1"}))
	require.NoError(t, queueapp.ValidateNumberOfArguments(queueapp.OpGet, nil))
}

func TestRun_LogsOperations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := queueapp.New(queueapp.WithLogger(zap.New(core)))

	app.Run([]string{"app", "push", "2", "get", "get"})
	require.Equal(t, 1, logs.FilterMessage("push").Len())
	require.Equal(t, 1, logs.FilterMessage("get").Len())
	require.Equal(t, 1, logs.FilterMessage("get on empty queue").Len())

	require.Panics(t, func() { queueapp.WithLogger(nil) })
}

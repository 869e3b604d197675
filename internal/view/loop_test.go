package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantCmd string
		wantArg string
	}{
		{name: "команда без аргумента", line: "tasks", wantCmd: "tasks", wantArg: ""},
		{name: "команда с аргументом", line: "toggle 2", wantCmd: "toggle", wantArg: "2"},
		{name: "аргумент из нескольких слов", line: "add buy some milk", wantCmd: "add", wantArg: "buy some milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, arg := splitCommand(tt.line)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArg, arg)
		})
	}
}

func TestRunQuit(t *testing.T) {
	v, out := newTestView(t, &stubTaskAPI{}, &stubUserAPI{})

	err := v.Run(context.Background(), strings.NewReader("quit\n"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Команды:")
}

func TestRunModeSwitchAndUnknownCommand(t *testing.T) {
	v, out := newTestView(t, &stubTaskAPI{}, &stubUserAPI{})

	err := v.Run(context.Background(), strings.NewReader("users\nbogus\nq\n"))

	require.NoError(t, err)
	assert.Equal(t, ModeUsers, v.Mode())
	assert.Contains(t, out.String(), "=== Пользователи ===")
	assert.Contains(t, out.String(), "Неизвестная команда")
}

func TestRunEOF(t *testing.T) {
	v, _ := newTestView(t, &stubTaskAPI{}, &stubUserAPI{})

	err := v.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
}

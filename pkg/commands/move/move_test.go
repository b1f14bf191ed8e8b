package move_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/projup/projup/pkg/commands/move"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/testutil"
	"github.com/projup/projup/pkg/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, ws *workspace.Workspace) {
	t.Helper()
	testutil.WriteTree(t, ws.FS, "/", testutil.FileTree{
		"data/projects.txt": "location = \"/backups\"\napp = \"/code/app\"\nother = \"/code/other\"\n",
		"code/app/main.go":  "package main",
		"backups/app/HEAD":  "ref",
	})
}

func TestMove_Rename(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)
	runner.Expect("/code/tool", "remote", "set-url", "backup", "/backups/tool")

	result, err := move.Move(context.Background(), move.MoveOptions{
		Workspace:   ws,
		Source:      "/code/app",
		Destination: "/code/tool",
	})
	require.NoError(t, err)
	runner.AssertExpectations(t)

	assert.Equal(t, "app", result.OldName)
	assert.Equal(t, "tool", result.NewName)
	assert.Equal(t, "/backups/app", result.OldBackup)
	assert.Equal(t, "/backups/tool", result.NewBackup)

	assert.Equal(t, "package main", testutil.ReadFile(t, ws.FS, "/code/tool/main.go"))
	assert.False(t, testutil.Exists(t, ws.FS, "/code/app"))
	assert.Equal(t, "ref", testutil.ReadFile(t, ws.FS, "/backups/tool/HEAD"))
	assert.False(t, testutil.Exists(t, ws.FS, "/backups/app"))
	assert.Equal(t, "location = \"/backups\"\nother = \"/code/other\"\ntool = \"/code/tool\"\n",
		testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
}

func TestMove_SameName(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)

	result, err := move.Move(context.Background(), move.MoveOptions{
		Workspace:   ws,
		Source:      "app",
		Destination: "/archive/app",
	})
	require.NoError(t, err)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)

	assert.Equal(t, "/code/app", result.Source)
	assert.Empty(t, result.NewBackup)
	assert.True(t, testutil.Exists(t, ws.FS, "/archive/app/main.go"))
	assert.True(t, testutil.Exists(t, ws.FS, "/backups/app/HEAD"))
	assert.Equal(t, "location = \"/backups\"\napp = \"/archive/app\"\nother = \"/code/other\"\n",
		testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
}

func TestMove_Errors(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		destination string
		code        errors.ErrorCode
	}{
		{"unknown", "/code/ghost", "/code/spirit", errors.ErrUnknownProject},
		{"name taken", "/code/app", "/elsewhere/other", errors.ErrProjectExists},
		{"destination exists", "/code/app", "/data", errors.ErrPathExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, runner := testutil.NewWorkspace()
			seed(t, ws)
			before := testutil.ReadFile(t, ws.FS, "/data/projects.txt")

			_, err := move.Move(context.Background(), move.MoveOptions{
				Workspace:   ws,
				Source:      tt.source,
				Destination: tt.destination,
			})
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
			assert.Equal(t, before, testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
			assert.True(t, testutil.Exists(t, ws.FS, "/code/app/main.go"))
		})
	}
}

func TestMove_RemoteFailure(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)
	runner.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("no such remote"))

	result, err := move.Move(context.Background(), move.MoveOptions{
		Workspace:   ws,
		Source:      "/code/app",
		Destination: "/code/tool",
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
	require.NotNil(t, result)
	assert.Equal(t, "/backups/tool", result.NewBackup)
	assert.Contains(t, testutil.ReadFile(t, ws.FS, "/data/projects.txt"), "tool = \"/code/tool\"")
}

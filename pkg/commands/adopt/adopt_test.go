package adopt_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/projup/projup/pkg/commands/adopt"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdopt(t *testing.T) {
	tests := []struct {
		name   string
		backup bool
		calls  int
	}{
		{"register only", false, 2},
		{"with push", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, runner := testutil.NewWorkspace()
			testutil.WriteTree(t, ws.FS, testutil.WorkDir, testutil.FileTree{"old/main.go": "package main"})

			runner.Expect("/backups/old", "init", "-b", "main", "--bare")
			runner.Expect("/work/old", "remote", "add", "backup", "/backups/old")
			if tt.backup {
				runner.Expect("/work/old", "push", "--all", "--force", "backup")
			}

			result, err := adopt.Adopt(context.Background(), adopt.AdoptOptions{
				Workspace: ws,
				Path:      "old",
				Backup:    tt.backup,
			})
			require.NoError(t, err)
			runner.AssertExpectations(t)
			runner.AssertNumberOfCalls(t, "Run", tt.calls)

			assert.Equal(t, "old", result.Name)
			assert.Equal(t, "/backups/old", result.Backup)
			assert.Equal(t, tt.backup, result.Pushed)
			assert.True(t, testutil.Exists(t, ws.FS, "/backups/old"))
			assert.Equal(t, "location = \"/backups\"\nold = \"/work/old\"\n",
				testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
		})
	}
}

func TestAdopt_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing directory", "/nowhere", errors.ErrFileNotFound},
		{"already registered", "/code/app", errors.ErrProjectExists},
		{"name taken", "/other/app", errors.ErrProjectExists},
		{"leftover backup", "/code/stale", errors.ErrPathExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, runner := testutil.NewWorkspace()
			testutil.WriteTree(t, ws.FS, "/", testutil.FileTree{
				"data/projects.txt":  "location = \"/backups\"\napp = \"/code/app\"\n",
				"code/app/main.go":   "",
				"code/stale/main.go": "",
				"other/app/main.go":  "",
				"backups/stale/HEAD": "",
			})

			_, err := adopt.Adopt(context.Background(), adopt.AdoptOptions{Workspace: ws, Path: tt.path})
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdopt_GitFailureCleansUp(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	testutil.WriteTree(t, ws.FS, testutil.WorkDir, testutil.FileTree{"old/main.go": ""})
	runner.Expect("/backups/old", "init", "-b", "main", "--bare")
	runner.On("Run", mock.Anything, "/work/old", mock.Anything).Return(fmt.Errorf("not a git repository"))

	_, err := adopt.Adopt(context.Background(), adopt.AdoptOptions{Workspace: ws, Path: "old"})
	require.Error(t, err)

	assert.False(t, testutil.Exists(t, ws.FS, "/backups/old"))
	assert.True(t, testutil.Exists(t, ws.FS, "/work/old/main.go"))
	assert.False(t, testutil.Exists(t, ws.FS, "/data/projects.txt"))
}

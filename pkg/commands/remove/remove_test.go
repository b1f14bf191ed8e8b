package remove_test

import (
	"testing"

	"github.com/projup/projup/pkg/commands/remove"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveProject(t *testing.T) {
	tests := []struct {
		name          string
		soft          bool
		backupDeleted bool
	}{
		{"hard", false, true},
		{"soft", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, _ := testutil.NewWorkspace()
			testutil.WriteTree(t, ws.FS, "/", testutil.FileTree{
				"data/projects.txt": "location = \"/backups\"\napp = \"/code/app\"\nother = \"/code/other\"\n",
				"backups/app/HEAD":  "ref",
				"code/app/main.go":  "package main",
			})

			result, err := remove.RemoveProject(remove.RemoveProjectOptions{
				Workspace: ws,
				Name:      "app",
				Soft:      tt.soft,
			})
			require.NoError(t, err)

			assert.Equal(t, "/code/app", result.Path)
			assert.Equal(t, tt.backupDeleted, result.BackupDeleted)
			assert.Equal(t, !tt.backupDeleted, testutil.Exists(t, ws.FS, "/backups/app"))
			assert.True(t, testutil.Exists(t, ws.FS, "/code/app/main.go"))
			assert.Equal(t, "location = \"/backups\"\nother = \"/code/other\"\n",
				testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
		})
	}
}

func TestRemoveProject_Unknown(t *testing.T) {
	ws, _ := testutil.NewWorkspace()

	_, err := remove.RemoveProject(remove.RemoveProjectOptions{Workspace: ws, Name: "ghost"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownProject))
}

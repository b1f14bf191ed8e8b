package configure_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/projup/projup/pkg/commands/configure"
	"github.com/projup/projup/pkg/config"
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
		"data/templates.txt":   "location = \"/templates\"\ngo-svc = \"go\"\n",
		"data/projects.txt":    "location = \"/backups\"\napp = \"/code/app\"\nlib = \"/code/lib\"\n",
		"templates/go/.projup": "[project]\nname = go-svc\n",
		"backups/app/HEAD":     "ref",
		"backups/lib/HEAD":     "ref",
	})
}

func TestConfigure_NoChanges(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)

	result, err := configure.Configure(context.Background(), configure.ConfigureOptions{Workspace: ws})
	require.NoError(t, err)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)

	assert.Equal(t, "/templates", result.TemplatesLocation)
	assert.Equal(t, "/backups", result.BackupLocation)
	assert.Empty(t, result.Moved)
}

func TestConfigure_MoveTemplates(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	seed(t, ws)

	result, err := configure.Configure(context.Background(), configure.ConfigureOptions{
		Workspace:        ws,
		TemplateLocation: "/srv/templates",
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/templates", result.TemplatesLocation)
	assert.Equal(t, []string{"/srv/templates"}, result.Moved)
	assert.True(t, testutil.Exists(t, ws.FS, "/srv/templates/go/.projup"))
	assert.False(t, testutil.Exists(t, ws.FS, "/templates"))
	assert.Equal(t, "location = \"/srv/templates\"\ngo-svc = \"go\"\n",
		testutil.ReadFile(t, ws.FS, "/data/templates.txt"))
}

func TestConfigure_MoveBackups(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)
	runner.Expect("/code/app", "remote", "set-url", "backup", "/srv/backups/app")
	runner.On("Run", mock.Anything, "/code/lib", mock.Anything).Return(fmt.Errorf("not a git repository"))

	result, err := configure.Configure(context.Background(), configure.ConfigureOptions{
		Workspace:      ws,
		BackupLocation: "/srv/backups",
	})
	require.NoError(t, err)
	runner.AssertExpectations(t)

	assert.Equal(t, "/srv/backups", result.BackupLocation)
	assert.Equal(t, []string{"app"}, result.RemotesUpdated)
	require.Len(t, result.RemoteErrors, 1)
	assert.Contains(t, result.RemoteErrors[0], "lib: ")
	assert.True(t, testutil.Exists(t, ws.FS, "/srv/backups/app/HEAD"))
	assert.True(t, testutil.Exists(t, ws.FS, "/srv/backups/lib/HEAD"))
	assert.Equal(t, "location = \"/srv/backups\"\napp = \"/code/app\"\nlib = \"/code/lib\"\n",
		testutil.ReadFile(t, ws.FS, "/data/projects.txt"))
}

func TestConfigure_Soft(t *testing.T) {
	ws, runner := testutil.NewWorkspace()
	seed(t, ws)

	result, err := configure.Configure(context.Background(), configure.ConfigureOptions{
		Workspace:        ws,
		TemplateLocation: "/srv/templates",
		BackupLocation:   "/srv/backups",
		Soft:             true,
	})
	require.NoError(t, err)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)

	assert.Empty(t, result.Moved)
	assert.Empty(t, result.RemotesUpdated)
	assert.True(t, testutil.Exists(t, ws.FS, "/templates/go/.projup"))
	assert.True(t, testutil.Exists(t, ws.FS, "/backups/app/HEAD"))
	assert.True(t, testutil.Exists(t, ws.FS, "/srv/templates"))
	assert.True(t, testutil.Exists(t, ws.FS, "/srv/backups"))
	assert.Contains(t, testutil.ReadFile(t, ws.FS, "/data/projects.txt"), "location = \"/srv/backups\"")
}

func TestConfigure_DestinationExists(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	seed(t, ws)
	testutil.WriteTree(t, ws.FS, "/srv", testutil.FileTree{"templates/x": ""})

	_, err := configure.Configure(context.Background(), configure.ConfigureOptions{
		Workspace:        ws,
		TemplateLocation: "/srv/templates",
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathExists))
	assert.Contains(t, testutil.ReadFile(t, ws.FS, "/data/templates.txt"), "location = \"/templates\"")
}

func TestConfigure_Init(t *testing.T) {
	ws, _ := testutil.NewWorkspace()

	result, err := configure.Configure(context.Background(), configure.ConfigureOptions{Workspace: ws, Init: true})
	require.NoError(t, err)

	assert.Equal(t, "/config/config.toml", result.ConfigFile)
	assert.Equal(t, config.GenerateConfigContent(), testutil.ReadFile(t, ws.FS, "/config/config.toml"))

	_, err = configure.Configure(context.Background(), configure.ConfigureOptions{Workspace: ws, Init: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathExists))
}

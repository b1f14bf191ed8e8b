package templates_test

import (
	"testing"

	"github.com/projup/projup/pkg/commands/templates"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/testutil"
	"github.com/projup/projup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	testutil.WriteTree(t, ws.FS, testutil.TemplatesDir, testutil.FileTree{
		"go/.projup":     "[project]\nname = go-svc\n",
		"rust/.projup":   "[project]\nname = rust-cli\n",
		"broken/.projup": "[project]\n",
		"notes/todo.md":  "no template here",
	})

	result, err := templates.Templates(templates.TemplatesOptions{Workspace: ws})
	require.NoError(t, err)

	assert.Equal(t, testutil.TemplatesDir, result.Location)
	assert.Equal(t, []types.TemplateInfo{
		{Name: "go-svc", Dir: "/templates/go"},
		{Name: "rust-cli", Dir: "/templates/rust"},
	}, result.Templates)
	require.Len(t, result.Invalid, 1)
	assert.Equal(t, "/templates/broken", result.Invalid[0].Dir)

	assert.Equal(t, "location = \"/templates\"\ngo-svc = \"go\"\nrust-cli = \"rust\"\n",
		testutil.ReadFile(t, ws.FS, "/data/templates.txt"))
}

func TestTemplates_CreatesLocation(t *testing.T) {
	ws, _ := testutil.NewWorkspace()

	result, err := templates.Templates(templates.TemplatesOptions{Workspace: ws})
	require.NoError(t, err)
	assert.Empty(t, result.Templates)
	assert.True(t, testutil.Exists(t, ws.FS, testutil.TemplatesDir))
}

func TestTemplates_Duplicate(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	testutil.WriteTree(t, ws.FS, testutil.TemplatesDir, testutil.FileTree{
		"a/.projup": "[project]\nname = same\n",
		"b/.projup": "[project]\nname = same\n",
	})

	_, err := templates.Templates(templates.TemplatesOptions{Workspace: ws})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateTemplate))
	assert.False(t, testutil.Exists(t, ws.FS, "/data/templates.txt"))
}

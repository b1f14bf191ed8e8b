package check_test

import (
	"testing"

	"github.com/projup/projup/pkg/commands/check"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	testutil.WriteTree(t, ws.FS, "/work/tpl", testutil.FileTree{
		".projup": "[project]\nname = svc\nversion = 2.1\n[subs]\nX = $undefined\n[bogus]\n",
	})

	_, err := check.Check(check.CheckOptions{Workspace: ws, Template: "tpl"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))
	assert.Equal(t, 6, errors.Line(err))

	testutil.WriteTree(t, ws.FS, "/work/tpl", testutil.FileTree{
		".projup": "[project]\nname = svc\nversion = 2.1\n[subs]\nX = $undefined\n",
	})
	result, err := check.Check(check.CheckOptions{Workspace: ws, Template: "tpl"})
	require.NoError(t, err)

	assert.Equal(t, "/work/tpl", result.Dir)
	assert.Equal(t, "svc", result.Name)
	assert.Equal(t, "2.1.0", result.Version)
	assert.False(t, result.FileNames)
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
		line    int
	}{
		{"missing name", "[project]\nversion = 1\n", errors.ErrMissingName, 0},
		{"duplicate name", "[project]\nname = a\nname = b\n", errors.ErrDuplicateProperty, 3},
		{"bad version", "[project]\nname = a\nversion = x.y\n", errors.ErrInvalidSyntax, 3},
		{"unknown property", "[project]\nname = a\nauthor = me\n", errors.ErrUnknownProperty, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, _ := testutil.NewWorkspace()
			testutil.WriteTree(t, ws.FS, "/tpl", testutil.FileTree{".projup": tt.content})

			_, err := check.Check(check.CheckOptions{Workspace: ws, Template: "/tpl"})
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			if tt.line > 0 {
				assert.Equal(t, tt.line, errors.Line(err))
			}
		})
	}
}

func TestCheck_ByName(t *testing.T) {
	ws, _ := testutil.NewWorkspace()
	testutil.WriteTree(t, ws.FS, "/", testutil.FileTree{
		"data/templates.txt":        "location = \"/templates\"\nweb = web-dir\n",
		"templates/web-dir/.projup": "[project]\nname = web\nfile_names = true\n",
	})

	result, err := check.Check(check.CheckOptions{Workspace: ws, Template: "web"})
	require.NoError(t, err)
	assert.Equal(t, "/templates/web-dir", result.Dir)
	assert.True(t, result.FileNames)
	assert.Equal(t, "1.0.0", result.Version)
}

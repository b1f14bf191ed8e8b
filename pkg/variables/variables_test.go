package variables_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/variables"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
}

func newEnv() *variables.Env {
	return variables.NewEnv(variables.Options{
		Clock: fixedClock,
		Name:  "my-cool project",
		Defines: map[string]string{
			"author": "Jo",
			"date2":  "not a builtin",
		},
	})
}

func TestEnv_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		ref      variables.Ref
		expected string
	}{
		{"date default", variables.Ref{Name: "date"}, "05/03/2024"},
		{"time default", variables.Ref{Name: "time"}, "14:07:09"},
		{"date with format", variables.Ref{Name: "date", Format: "%Y", HasFormat: true}, "2024"},
		{"time with format", variables.Ref{Name: "time", Format: "%H-%M", HasFormat: true}, "14-07"},
		{"name", variables.Ref{Name: "name"}, "my-cool project"},
		{"name snake", variables.Ref{Name: "name", Format: "snake", HasFormat: true}, "my_cool_project"},
		{"name pascal", variables.Ref{Name: "name", Format: "Pascal", HasFormat: true}, "MyCoolProject"},
		{"name unknown case", variables.Ref{Name: "name", Format: "wiggly", HasFormat: true}, "my-cool project"},
		{"define", variables.Ref{Name: "author"}, "Jo"},
		{"define ignores format", variables.Ref{Name: "author", Format: "%Y", HasFormat: true}, "Jo"},
		{"define that is not a builtin", variables.Ref{Name: "date2"}, "not a builtin"},
	}

	env := newEnv()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnv_UnknownCaseWarns(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = saved })

	got, err := newEnv().Resolve(variables.Ref{Line: 4, Name: "name", Format: "wiggly", HasFormat: true})
	require.NoError(t, err)
	assert.Equal(t, "my-cool project", got)

	assert.Contains(t, buf.String(), `"component":"variables"`)
	assert.Contains(t, buf.String(), `"case":"wiggly"`)
	assert.Contains(t, buf.String(), `"line":5`)
	assert.Contains(t, buf.String(), "unrecognised case")
}

func TestEnv_BuiltinsWinOverDefines(t *testing.T) {
	env := variables.NewEnv(variables.Options{
		Clock:   fixedClock,
		Name:    "proj",
		Defines: map[string]string{"name": "other"},
	})

	got, err := env.Resolve(variables.Ref{Name: "name"})
	require.NoError(t, err)
	assert.Equal(t, "proj", got)
}

func TestEnv_UnknownVariable(t *testing.T) {
	_, err := newEnv().Resolve(variables.Ref{Line: 4, Name: "nope"})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariable))
	assert.Equal(t, 5, errors.Line(err))
	assert.Equal(t, "nope", errors.GetErrorDetails(err)["name"])
}

func TestEnv_InvalidTimeFormat(t *testing.T) {
	_, err := newEnv().Resolve(variables.Ref{Name: "date", Format: "%Q", HasFormat: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSyntax))
}

func TestEnv_DefaultClock(t *testing.T) {
	env := variables.NewEnv(variables.Options{})
	got, err := env.Resolve(variables.Ref{Name: "date", Format: "%Y", HasFormat: true})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestMapFunc(t *testing.T) {
	var m variables.Map = variables.MapFunc(func(ref variables.Ref) (string, error) {
		return "<" + ref.Name + ">", nil
	})

	got, err := m.Resolve(variables.Ref{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "<x>", got)
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"date", "name", "time"}, variables.Builtins())
}

func TestRecorder(t *testing.T) {
	r := variables.NewRecorder()

	refs := []variables.Ref{
		{Line: 2, Name: "date"},
		{Line: 3, Name: "name", Format: "snake", HasFormat: true},
		{Line: 4, Name: "date"},
		{Line: 5, Name: "author"},
		{Line: 6, Name: "name"},
	}
	for _, ref := range refs {
		got, err := r.Resolve(ref)
		require.NoError(t, err)
		assert.Equal(t, ref.Name, got)
	}

	vars := r.Variables()
	require.Len(t, vars, 4)
	assert.Equal(t, variables.Recorded{Name: "date", Line: 2}, vars[0])
	assert.Equal(t, variables.Recorded{Name: "name", Format: "snake", HasFormat: true, Line: 3}, vars[1])
	assert.Equal(t, "author", vars[2].Name)
	assert.False(t, vars[2].Builtin())
	assert.True(t, vars[3].Builtin())
}

func TestParseDefine(t *testing.T) {
	tests := []struct {
		input   string
		key     string
		value   string
		wantErr bool
	}{
		{input: "author=Jo", key: "author", value: "Jo"},
		{input: "eq=a=b", key: "eq", value: "a=b"},
		{input: "empty=", key: "empty", value: ""},
		{input: "novalue", wantErr: true},
		{input: "=value", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, v, err := variables.ParseDefine(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDefinition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, k)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestParseDefines(t *testing.T) {
	defs, err := variables.ParseDefines([]string{"a=1", "b=2", "a=3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, defs)

	_, err = variables.ParseDefines([]string{"a=1", "bad"})
	assert.Error(t, err)
}

package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := registry.New[string]("project")
	assert.Equal(t, "project", r.Kind())

	require.NoError(t, r.Register("app", "/code/app"))
	got, err := r.Get("app")
	require.NoError(t, err)
	assert.Equal(t, "/code/app", got)
	assert.True(t, r.Has("app"))
	assert.False(t, r.Has("lib"))

	_, err = r.Get("lib")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "unknown project lib")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := registry.New[int]("template")
	require.NoError(t, r.Register("go", 1))

	err := r.Register("go", 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Contains(t, err.Error(), "template go is listed twice")

	err = r.Register("", 3)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	got, _ := r.Get("go")
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Remove(t *testing.T) {
	r := registry.New[string]("project")
	require.NoError(t, r.Register("app", "/code/app"))

	got, err := r.Remove("app")
	require.NoError(t, err)
	assert.Equal(t, "/code/app", got)
	assert.Equal(t, 0, r.Len())

	_, err = r.Remove("app")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRegistry_Rename(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		code errors.ErrorCode
		want []string
	}{
		{"new name", "app", "tool", "", []string{"lib", "tool"}},
		{"same name", "app", "app", "", []string{"app", "lib"}},
		{"taken", "app", "lib", errors.ErrAlreadyExists, []string{"app", "lib"}},
		{"unknown", "ghost", "spirit", errors.ErrNotFound, []string{"app", "lib"}},
		{"empty", "app", "", errors.ErrInvalidInput, []string{"app", "lib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New[string]("project")
			require.NoError(t, r.Register("app", "/code/app"))
			require.NoError(t, r.Register("lib", "/code/lib"))

			err := r.Rename(tt.from, tt.to, "/moved")
			if tt.code == "" {
				require.NoError(t, err)
				got, _ := r.Get(tt.to)
				assert.Equal(t, "/moved", got)
			} else {
				assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			}
			assert.Equal(t, tt.want, r.List())
		})
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := registry.New[bool]("variable")
	for _, name := range []string{"time", "date", "name"} {
		require.NoError(t, r.Register(name, true))
	}
	assert.Equal(t, []string{"date", "name", "time"}, r.List())

	assert.Empty(t, registry.New[bool]("variable").List())
}

func TestMustRegister(t *testing.T) {
	r := registry.New[int]("builtin variable")
	registry.MustRegister(r, "date", 1)
	assert.True(t, r.Has("date"))

	assert.PanicsWithValue(t, "registry: [ALREADY_EXISTS] builtin variable date is listed twice", func() {
		registry.MustRegister(r, "date", 2)
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	r := registry.New[int]("project")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("p%02d", i)
			assert.NoError(t, r.Register(name, i))
			_, _ = r.Get(name)
			_ = r.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}

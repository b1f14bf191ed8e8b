package variables

import (
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/projup/projup/pkg/cases"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/registry"
)

const (
	DefaultDateFormat = "%d/%m/%Y"
	DefaultTimeFormat = "%H:%M:%S"
)

// Builtin resolves one built-in variable against an Env.
type Builtin func(env *Env, ref Ref) (string, error)

var builtins = registry.New[Builtin]("builtin variable")

func init() {
	registry.MustRegister(builtins, "date", timeBuiltin(DefaultDateFormat))
	registry.MustRegister(builtins, "time", timeBuiltin(DefaultTimeFormat))
	registry.MustRegister(builtins, "name", nameBuiltin)
}

// Builtins returns the names of the built-in variables.
func Builtins() []string {
	return builtins.List()
}

// Options configures an Env.
type Options struct {
	// Clock returns the current time; time.Now when nil
	Clock func() time.Time
	// Name is the name of the project being created
	Name string
	// Defines are user supplied constants (-D key=value)
	Defines map[string]string
}

// Env resolves built-in variables first, then user defines.
type Env struct {
	opts Options
}

// NewEnv creates an Env.
func NewEnv(opts Options) *Env {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Env{opts: opts}
}

// Resolve implements Map.
func (e *Env) Resolve(ref Ref) (string, error) {
	logger := logging.GetLogger("variables")

	if b, err := builtins.Get(ref.Name); err == nil {
		return b(e, ref)
	}

	if v, ok := e.opts.Defines[ref.Name]; ok {
		if ref.HasFormat {
			logger.Debug().Str("name", ref.Name).Msg("format ignored for defined variable")
		}
		return v, nil
	}

	return "", UnknownVariable(ref.Line, ref.Name)
}

func timeBuiltin(defaultFormat string) Builtin {
	return func(env *Env, ref Ref) (string, error) {
		pattern := defaultFormat
		if ref.HasFormat {
			pattern = ref.Format
		}

		out, err := strftime.Format(pattern, env.opts.Clock())
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidSyntax, "invalid format for $%s on line %d", ref.Name, ref.Line+1).
				WithDetail("line", ref.Line+1).
				WithDetail("name", ref.Name)
		}
		return out, nil
	}
}

func nameBuiltin(env *Env, ref Ref) (string, error) {
	if !ref.HasFormat {
		return env.opts.Name, nil
	}

	c, err := cases.Parse(ref.Format)
	if err != nil {
		logger := logging.GetLogger("variables")
		logger.Warn().
			Str("case", ref.Format).
			Int("line", ref.Line+1).
			Msg("unrecognised case, using name unchanged")
		return env.opts.Name, nil
	}
	return cases.Convert(env.opts.Name, c), nil
}

package projfile

import (
	"github.com/projup/projup/pkg/errors"
)

// Error constructors take the 0-based token line and report it 1-based.

func errMissingName() error {
	return errors.New(errors.ErrMissingName, "project name is not set")
}

func errDuplicateProperty(line int, name string) error {
	return errors.Newf(errors.ErrDuplicateProperty, "property %s is set more than once (line %d)", name, line+1).
		WithDetail("line", line+1).
		WithDetail("name", name)
}

func errInvalidSyntax(line int, reason string) error {
	return errors.Newf(errors.ErrInvalidSyntax, "invalid syntax on line %d: %s", line+1, reason).
		WithDetail("line", line+1)
}

func errUnknownTag(line int, name string) error {
	return errors.Newf(errors.ErrUnknownTag, "unknown tag [%s] on line %d", name, line+1).
		WithDetail("line", line+1).
		WithDetail("name", name)
}

func errUnknownProperty(line int, name string) error {
	return errors.Newf(errors.ErrUnknownProperty, "unknown property %s on line %d", name, line+1).
		WithDetail("line", line+1).
		WithDetail("name", name)
}

func errDependencyOutside(line int, path string) error {
	return errors.Newf(errors.ErrDependencyOutside, "dependency path %s on line %d leaves the project", path, line+1).
		WithDetail("line", line+1).
		WithDetail("path", path)
}

package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/spf13/afero"
)

// NewOS returns the OS filesystem.
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// EnsureAbsent fails with ErrPathExists when path exists.
func EnsureAbsent(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path).
			WithDetail("path", path)
	}
	if exists {
		return errors.Newf(errors.ErrPathExists, "path %s already exists", path).
			WithDetail("path", path)
	}
	return nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
			WithDetail("path", dir)
	}
	return nil
}

// Move moves src to dst, creating dst's parent. dst must not exist. When a
// plain rename is not possible the tree is copied and src removed.
func Move(fs afero.Fs, src, dst string) error {
	logger := logging.GetLogger("filesystem")

	if err := EnsureAbsent(fs, dst); err != nil {
		return err
	}
	if err := EnsureDir(fs, filepath.Dir(dst)); err != nil {
		return err
	}

	err := fs.Rename(src, dst)
	if err == nil {
		logger.Debug().Str("from", src).Str("to", dst).Msg("renamed")
		return nil
	}
	logger.Debug().Err(err).Str("from", src).Str("to", dst).Msg("rename failed, copying")

	if err := CopyTree(fs, src, dst); err != nil {
		return err
	}
	if err := fs.RemoveAll(src); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", src).
			WithDetail("path", src)
	}
	return nil
}

// CopyTree copies the file or directory src to dst, keeping modes.
func CopyTree(fs afero.Fs, src, dst string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
				WithDetail("path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to compute relative path")
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			if err := fs.MkdirAll(target, info.Mode().Perm()); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", target).
					WithDetail("path", target)
			}
			return nil
		}

		return copyFile(fs, path, target, info.Mode().Perm())
	})
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", src).
			WithDetail("path", src)
	}
	defer func() { _ = in.Close() }()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dst).
			WithDetail("path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s", src).
			WithDetail("path", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst).
			WithDetail("path", dst)
	}
	return nil
}

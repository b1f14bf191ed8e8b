// Package template materializes a template directory into a new project.
//
// Every regular file below the template root is copied with its content
// rewritten by the template's substitution table. When the template sets
// file_names, file and directory names are rewritten too. The .projup file
// at the root and any .git directory are not copied.
package template

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/projfile"
	"github.com/projup/projup/pkg/substitute"
	"github.com/projup/projup/pkg/variables"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when Options.Workers is not positive.
const DefaultWorkers = 4

// Options configures Apply.
type Options struct {
	FS          afero.Fs
	Source      string
	Destination string
	Config      *projfile.Config
	// Table is built from Config when nil
	Table   *substitute.Table
	Workers int
}

// Result lists what Apply created, relative to the destination and sorted.
type Result struct {
	Dirs  []string
	Files []string
}

type fileJob struct {
	src  string
	dst  string
	perm os.FileMode
}

// Load reads and parses the .projup file of the template in dir.
func Load(fs afero.Fs, dir string, vars variables.Map) (*projfile.Config, error) {
	file := filepath.Join(dir, projfile.FileName)

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrTemplateInvalid, "%s has no %s file", dir, projfile.FileName).
				WithDetail("path", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file).
			WithDetail("path", file)
	}

	cfg, err := projfile.ParseContent(string(data), vars)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies opts.Source to opts.Destination, which must not exist.
func Apply(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("template")
	done := logging.LogOperationStart(logger, "apply template")
	defer done()

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "template config is required")
	}
	table := opts.Table
	if table == nil {
		var err error
		if table, err = opts.Config.Table(); err != nil {
			return nil, err
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	fs := opts.FS
	if ok, err := afero.Exists(fs, filepath.Join(opts.Source, projfile.FileName)); err != nil || !ok {
		return nil, errors.Newf(errors.ErrTemplateInvalid, "%s has no %s file", opts.Source, projfile.FileName).
			WithDetail("path", opts.Source)
	}
	if err := filesystem.EnsureAbsent(fs, opts.Destination); err != nil {
		return nil, err
	}

	m := &mapper{table: table, rename: opts.Config.FileNames, seen: map[string]string{}}
	result := &Result{}
	var jobs []fileJob

	err := afero.Walk(fs, opts.Source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
				WithDetail("path", path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(opts.Source, path)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to compute relative path")
		}
		if rel == "." {
			if err := fs.MkdirAll(opts.Destination, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", opts.Destination).
					WithDetail("path", opts.Destination)
			}
			return nil
		}

		switch {
		case info.IsDir() && info.Name() == ".git":
			return filepath.SkipDir
		case rel == projfile.FileName:
			return nil
		case !info.IsDir() && !info.Mode().IsRegular():
			logger.Warn().Str("path", path).Msg("skipping non-regular file")
			return nil
		}

		dstRel, err := m.target(rel)
		if err != nil {
			return err
		}
		dst := filepath.Join(opts.Destination, dstRel)

		if info.IsDir() {
			if err := fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dst).
					WithDetail("path", dst)
			}
			result.Dirs = append(result.Dirs, filepath.ToSlash(dstRel))
			return nil
		}

		jobs = append(jobs, fileJob{src: path, dst: dst, perm: info.Mode().Perm()})
		result.Files = append(result.Files, filepath.ToSlash(dstRel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return rewriteFile(fs, table, job)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(result.Dirs)
	sort.Strings(result.Files)

	logger.Info().
		Str("template", opts.Config.Name).
		Str("destination", opts.Destination).
		Int("files", len(result.Files)).
		Msg("template applied")

	return result, nil
}

func rewriteFile(fs afero.Fs, table *substitute.Table, job fileJob) error {
	data, err := afero.ReadFile(fs, job.src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", job.src).
			WithDetail("path", job.src)
	}

	if err := afero.WriteFile(fs, job.dst, table.Replace(data), job.perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", job.dst).
			WithDetail("path", job.dst)
	}
	return nil
}

// mapper computes destination paths, renaming components when enabled.
type mapper struct {
	table  *substitute.Table
	rename bool
	// seen maps destination paths to the source path that produced them
	seen map[string]string
}

func (m *mapper) target(rel string) (string, error) {
	if !m.rename {
		return rel, nil
	}

	parts := strings.Split(rel, string(filepath.Separator))
	for i, part := range parts {
		parts[i] = RenameComponent(m.table, part)
	}
	dst := filepath.Join(parts...)

	if other, ok := m.seen[dst]; ok {
		return "", errors.Newf(errors.ErrTemplateInvalid, "%s and %s are both renamed to %s", other, rel, dst).
			WithDetail("path", dst)
	}
	m.seen[dst] = rel
	return dst, nil
}

// RenameComponent rewrites a single file or directory name. The original
// is kept when the result is not valid UTF-8, is empty, is "." or "..", or
// contains a path separator.
func RenameComponent(table *substitute.Table, name string) string {
	renamed := table.ReplaceString(name)
	switch {
	case !utf8.ValidString(renamed),
		renamed == "", renamed == ".", renamed == "..",
		strings.ContainsAny(renamed, `/\`):
		return name
	}
	return renamed
}

// Package git runs git as an external process.
//
// Every operation goes through a Runner so commands can be tested without a
// git binary. ExecRunner is the production implementation.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultBranch is the initial branch of repositories created by projup.
const DefaultBranch = "main"

// DefaultRemote is the name of the remote pointing at a project's backup.
const DefaultRemote = "backup"

// Runner runs git with args in dir.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct {
	Binary string
	logger zerolog.Logger
}

// NewExecRunner returns a runner for the git binary on PATH.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Binary: "git",
		logger: logging.GetLogger("git"),
	}
}

// Run implements Runner. Output is logged at debug level; on failure the
// returned error carries git's stderr.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	logging.LogCommand(r.logger, dir, r.Binary, args)

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", stdout.String()).Msg("git stdout")
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return errors.Wrapf(err, errors.ErrGitCommand, "git %s failed: %s", strings.Join(args, " "), msg).
			WithDetail("dir", dir).
			WithDetail("args", args).
			WithDetail("stderr", msg)
	}
	return nil
}

// Client wraps a Runner with the operations projup needs.
type Client struct {
	runner Runner
}

// New returns a client using runner.
func New(runner Runner) *Client {
	return &Client{runner: runner}
}

// Init creates a repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	return c.runner.Run(ctx, dir, "init", "-b", DefaultBranch)
}

// InitBare creates a bare repository in dir.
func (c *Client) InitBare(ctx context.Context, dir string) error {
	return c.runner.Run(ctx, dir, "init", "-b", DefaultBranch, "--bare")
}

// AddRemote adds a remote to the repository in dir.
func (c *Client) AddRemote(ctx context.Context, dir, name, url string) error {
	return c.runner.Run(ctx, dir, "remote", "add", name, url)
}

// SetRemote changes the url of an existing remote.
func (c *Client) SetRemote(ctx context.Context, dir, name, url string) error {
	return c.runner.Run(ctx, dir, "remote", "set-url", name, url)
}

// SubmoduleAdd adds url as a submodule at path, relative to dir.
func (c *Client) SubmoduleAdd(ctx context.Context, dir, url, path string) error {
	return c.runner.Run(ctx, dir, "submodule", "add", url, path)
}

// PushAll force pushes every local branch to remote.
func (c *Client) PushAll(ctx context.Context, dir, remote string) error {
	return c.runner.Run(ctx, dir, "push", "--all", "--force", remote)
}

// Clone clones url from dir, into path when it is not empty.
func (c *Client) Clone(ctx context.Context, dir, url, path string) error {
	args := []string{"clone", url}
	if path != "" {
		args = append(args, path)
	}
	return c.runner.Run(ctx, dir, args...)
}

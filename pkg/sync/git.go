package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepo is returned when the data directory has not been initialized.
var ErrNotRepo = errors.New("not a git repository. Run 'quest init' first")

type git struct {
	dir string
	out io.Writer
}

func (g git) cmd(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "git", append([]string{"-C", g.dir}, args...)...)
}

// run executes git and streams its output.
func (g git) run(ctx context.Context, args ...string) error {
	c := g.cmd(ctx, args...)
	c.Stdout = g.out
	c.Stderr = g.out
	return c.Run()
}

// output executes git quietly and returns trimmed stdout.
func (g git) output(ctx context.Context, args ...string) (string, error) {
	b, err := g.cmd(ctx, args...).Output()
	return strings.TrimSpace(string(b)), err
}

func isRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// InitRepo turns the data directory into a git repository when needed
// and points origin at remote, if one is given.
func InitRepo(ctx context.Context, dir, remote string, out io.Writer) error {
	g := git{dir: dir, out: out}

	if !isRepo(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		if err := g.run(ctx, "init", "--quiet"); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		fmt.Fprintf(out, "Initialized git repository in %s\n", dir)
	}

	if remote == "" {
		return nil
	}

	// Replace any existing origin; removal fails harmlessly when there is none.
	g.cmd(ctx, "remote", "remove", "origin").Run()
	if err := g.run(ctx, "remote", "add", "origin", remote); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	fmt.Fprintf(out, "Remote set to: %s\n", remote)
	return nil
}

// SyncRepo commits local changes with message, then, if origin is configured,
// pulls (rebase, falling back to merge) and pushes.
func SyncRepo(ctx context.Context, dir, message string, out io.Writer) error {
	if !isRepo(dir) {
		return ErrNotRepo
	}
	g := git{dir: dir, out: out}

	if err := g.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	// diff --quiet exits 1 when something is staged.
	if err := g.cmd(ctx, "diff", "--cached", "--quiet").Run(); err != nil {
		if err := g.run(ctx, "commit", "--quiet", "-m", message); err != nil {
			return fmt.Errorf("committing: %w", err)
		}
		fmt.Fprintf(out, "Committed: %s\n", message)
	}

	if remote, _ := g.output(ctx, "remote"); remote == "" {
		fmt.Fprintln(out, "No remote configured; skipping pull/push.")
		return nil
	}

	fmt.Fprintln(out, "Pulling...")
	if err := g.run(ctx, "pull", "--rebase"); err != nil {
		fmt.Fprintln(out, "Rebase failed, trying merge...")
		g.cmd(ctx, "rebase", "--abort").Run()
		if err := g.run(ctx, "pull", "--no-rebase"); err != nil {
			g.cmd(ctx, "merge", "--abort").Run()
			return fmt.Errorf("sync failed: could not rebase or merge. Resolve conflicts manually")
		}
	}

	fmt.Fprintln(out, "Pushing...")
	if err := g.run(ctx, "push", "-u", "origin", "HEAD"); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	fmt.Fprintln(out, "Sync complete.")
	return nil
}

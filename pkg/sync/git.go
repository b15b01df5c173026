// Package sync backs the goals directory with a plain git repo so the
// markdown files can travel between machines.
package sync

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// EnsureRepo initializes a git repo in the data directory if one isn't
// there yet.
func EnsureRepo(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return nil
	}
	cmd := exec.Command("git", "-C", dir, "init")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// InitRepo sets the remote for the data directory's git repo, creating the
// repo first if needed.
func InitRepo(dir string, remote string) error {
	if err := EnsureRepo(dir); err != nil {
		return err
	}

	if remote == "" {
		fmt.Println("No remote specified. Use --remote <url> to set one.")
		return nil
	}

	// Remove existing origin first (ignore error if doesn't exist)
	exec.Command("git", "-C", dir, "remote", "remove", "origin").Run()

	cmd := exec.Command("git", "-C", dir, "remote", "add", "origin", remote)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	fmt.Printf("Remote set to: %s\n", remote)
	return nil
}

// SyncRepo synchronizes the data directory with the remote, printing progress
// and git output to stdout. CLI entry point.
func SyncRepo(dir string) error {
	return Sync(dir, os.Stdout, func(step string) { fmt.Println(step) })
}

// Sync synchronizes the data directory with the remote.
// Strategy: commit local changes, rebase, fallback to merge, push.
// Git output goes to out (nil discards it) and step descriptions to progress
// (nil skips them), so callers that own the terminal can run it silently.
func Sync(dir string, out io.Writer, progress func(string)) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		return fmt.Errorf("not a git repository. Run 'almanac init' first")
	}

	say := func(step string) {
		if progress != nil {
			progress(step)
		}
	}
	git := func(args ...string) *exec.Cmd {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Stdout = out
		cmd.Stderr = out
		return cmd
	}

	// 1. Stage and commit any uncommitted local changes
	say("Staging changes...")
	git("add", "-A").Run()
	if err := exec.Command("git", "-C", dir, "diff", "--cached", "--quiet").Run(); err != nil {
		msg := "sync " + time.Now().Format("2006-01-02 15:04:05")
		git("commit", "-m", msg).Run()
	}

	// 2. Try pull --rebase
	say("Pulling...")
	if err := git("pull", "--rebase").Run(); err != nil {
		// 3. Rebase failed — abort and try merge
		say("Rebase failed, trying merge...")
		git("rebase", "--abort").Run()

		if err := git("pull", "--no-rebase").Run(); err != nil {
			// 4. Merge also failed — abort and report
			git("merge", "--abort").Run()
			return fmt.Errorf("sync failed: could not rebase or merge. Resolve conflicts manually")
		}
	}

	// 5. Push
	say("Pushing...")
	if err := git("push").Run(); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	say("Sync complete.")
	return nil
}

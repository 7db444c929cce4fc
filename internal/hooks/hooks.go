// Package hooks invokes external commands when items are deleted.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ActionDelete is the first argument passed to the hook after an item is
// deleted.
const ActionDelete = "delete"

// Options configures a hook invocation.
type Options struct {
	Command string
	Action  string
	ItemID  string
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Result captures the outcome of a hook invocation.
type Result struct {
	Ran      bool
	Command  []string
	ExitCode int
	ItemID   string
}

// Invoke runs the hook command as "<command> <action> <id>".
func Invoke(ctx context.Context, opts Options) (Result, error) {
	if strings.TrimSpace(opts.Command) == "" || opts.ItemID == "" {
		return Result{}, nil
	}
	action := opts.Action
	if action == "" {
		action = ActionDelete
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, opts.Command, action, opts.ItemID)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	result := Result{
		Ran:      true,
		Command:  cmd.Args,
		ExitCode: exitCodeFromError(err),
		ItemID:   opts.ItemID,
	}
	if err != nil {
		return result, fmt.Errorf("hook command failed: %w", err)
	}
	return result, nil
}

// Notifier runs the hook in the background for every deleted item. Callers
// never wait on a notification; failures are logged.
type Notifier struct {
	ctx     context.Context
	command string
	workDir string
	logger  *log.Logger
	wg      sync.WaitGroup
}

// NewNotifier creates a notifier. Hooks are killed when ctx ends.
func NewNotifier(ctx context.Context, command, workDir string, logger *log.Logger) *Notifier {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Notifier{ctx: ctx, command: command, workDir: workDir, logger: logger}
}

// Enabled reports whether a hook command is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && strings.TrimSpace(n.command) != ""
}

// Notify starts the hook for id and returns immediately.
func (n *Notifier) Notify(id string) {
	n.logger.Info("item deleted", "id", id)
	if !n.Enabled() {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		var out bytes.Buffer
		result, err := Invoke(n.ctx, Options{
			Command: n.command,
			Action:  ActionDelete,
			ItemID:  id,
			WorkDir: n.workDir,
			Stdout:  &out,
			Stderr:  &out,
		})
		if err != nil {
			n.logger.Error("delete hook failed", "id", id, "exit", result.ExitCode, "err", err, "output", strings.TrimSpace(out.String()))
			return
		}
		n.logger.Debug("delete hook finished", "id", id, "output", strings.TrimSpace(out.String()))
	}()
}

// Wait blocks until every started hook has exited.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

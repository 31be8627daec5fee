package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var globalLogger logrus.FieldLogger = logrus.StandardLogger()

// SetGlobalLogger sets the logger new runners trace commands to.
func SetGlobalLogger(l logrus.FieldLogger) {
	globalLogger = l
}

type Runner struct {
	log logrus.FieldLogger
}

func NewRunner() *Runner {
	return &Runner{log: globalLogger}
}

func (r *Runner) logCommand(name string, args []string) {
	r.log.WithField("event", "exec").Debugf("$ %s %s", name, strings.Join(args, " "))
}

// RunSilent executes a command and returns stdout. Stderr is included in errors.
func (r *Runner) RunSilent(ctx context.Context, name string, args []string) ([]byte, error) {
	r.logCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

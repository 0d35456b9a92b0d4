// Package gateways provides adapters around external processes and the filesystem.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// DefaultPip is the installer executable used when none is configured
const DefaultPip = "pip"

// Installer runs the dependency installation step
type Installer struct {
	defaultTimeout time.Duration
}

// NewInstaller creates a new installer gateway
func NewInstaller() *Installer {
	return &Installer{
		defaultTimeout: 10 * time.Minute,
	}
}

// ExecConfig contains configuration for running an external command.
type ExecConfig struct {
	Command     []string
	WorkingDir  string
	Env         map[string]string
	Timeout     time.Duration
	Description string

	// Stdout and Stderr receive the child's output when set; otherwise the
	// output is captured into the result.
	Stdout io.Writer
	Stderr io.Writer
}

// ExecResult contains the result of a command execution
type ExecResult struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    error
}

// InstallRequirements invokes the package installer against a requirements
// file, e.g. `pip install -r requirements_resize.txt`. The child's exit code
// is always surfaced in the result.
func (in *Installer) InstallRequirements(ctx context.Context, pip, requirementsFile string, cfg ExecConfig) *ExecResult {
	if pip == "" {
		pip = DefaultPip
	}
	cfg.Command = []string{pip, "install", "-r", requirementsFile}
	if cfg.Description == "" {
		cfg.Description = "install dependencies"
	}
	return in.Execute(ctx, cfg)
}

// Execute runs an external command with the given configuration
func (in *Installer) Execute(ctx context.Context, cfg ExecConfig) *ExecResult {
	startTime := time.Now()
	result := &ExecResult{}

	if len(cfg.Command) == 0 {
		result.Error = errors.New("no command configured")
		result.ExitCode = -1
		return result
	}

	// Use default timeout if not specified
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = in.defaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // G204: the command is assembled from user-provided flags
	cmd := exec.CommandContext(execCtx, cfg.Command[0], cfg.Command[1:]...)

	if cfg.WorkingDir != "" {
		cmd.Dir = cfg.WorkingDir
	}

	// Build environment variables
	env := os.Environ()
	for key, value := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	cmd.Env = env

	// Stream when writers are provided, capture otherwise
	var stdout, stderr bytes.Buffer
	if cfg.Stdout != nil {
		cmd.Stdout = cfg.Stdout
	} else {
		cmd.Stdout = &stdout
	}
	if cfg.Stderr != nil {
		cmd.Stderr = cfg.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result.Duration = time.Since(startTime)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		result.Error = err
		var exitErr *exec.ExitError
		//nolint:gocritic // ifElseChain: checking different error types, not suitable for switch
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else if execCtx.Err() == context.DeadlineExceeded {
			result.Error = fmt.Errorf("%s timed out after %v", cfg.Description, timeout)
			result.ExitCode = -1
		} else {
			result.ExitCode = -1
		}
		return result
	}

	result.Success = true
	result.ExitCode = 0
	return result
}

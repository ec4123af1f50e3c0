package helptext

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
)

const (
	helpFlag         = "--help"
	commandPathSpace = " "
	pagerEnvironment = "PAGER=cat"
	gitPagerEnvirons = "GIT_PAGER=cat"
	terminalEnviron  = "TERM=dumb"
)

// Result carries the outcome of one help invocation of the inspected binary.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the invocation satisfied the provider contract:
// a zero exit code and an empty error stream.
func (result Result) Succeeded() bool {
	return result.ExitCode == 0 && strings.TrimSpace(result.Stderr) == ""
}

// Provider supplies help text for a command path of the inspected binary.
// An empty command path addresses the root command.
type Provider interface {
	Help(commandPath string) (Result, error)
}

// ExecProvider invokes the inspected binary with its help flag appended.
type ExecProvider struct {
	binaryName string
}

// NewExecProvider constructs a Provider shelling out to the named binary.
func NewExecProvider(binaryName string) *ExecProvider {
	return &ExecProvider{binaryName: binaryName}
}

// Help runs `<binary> [commandPath...] --help` and captures both output streams.
// Pagers are disabled so the invocation never blocks on interactive input.
func (provider *ExecProvider) Help(commandPath string) (Result, error) {
	var invocationArguments []string
	if commandPath != "" {
		invocationArguments = strings.Split(commandPath, commandPathSpace)
	}
	invocationArguments = append(invocationArguments, helpFlag)

	// #nosec G204
	helpCommand := exec.Command(provider.binaryName, invocationArguments...)
	helpCommand.Env = append(os.Environ(), pagerEnvironment, gitPagerEnvirons, terminalEnviron)

	var standardOutput bytes.Buffer
	var standardError bytes.Buffer
	helpCommand.Stdout = &standardOutput
	helpCommand.Stderr = &standardError

	runError := helpCommand.Run()
	invocationResult := Result{
		Stdout: standardOutput.String(),
		Stderr: standardError.String(),
	}
	if runError != nil {
		var exitError *exec.ExitError
		if errors.As(runError, &exitError) {
			invocationResult.ExitCode = exitError.ExitCode()
			return invocationResult, nil
		}
		return invocationResult, runError
	}
	invocationResult.ExitCode = helpCommand.ProcessState.ExitCode()
	return invocationResult, nil
}

var _ Provider = (*ExecProvider)(nil)

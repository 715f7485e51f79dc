package domain

import "errors"

// ExitCode is the process exit status of the cairn command.
type ExitCode int

const (
	// ExitCodeOK signals success.
	ExitCodeOK ExitCode = 0
	// ExitCodeParseError signals a command line that could not be parsed.
	ExitCodeParseError ExitCode = 1
	// ExitCodeNotImplemented signals a command without an implementation.
	ExitCodeNotImplemented ExitCode = 2
	// ExitCodeExecutionFailed signals a failed run, shell or clean.
	ExitCodeExecutionFailed ExitCode = 3
	// ExitCodeResolutionFailed signals a project that could not be loaded.
	ExitCodeResolutionFailed ExitCode = 4
	// ExitCodeBuildFailed signals a failed build pass.
	ExitCodeBuildFailed ExitCode = 5
)

// ExitCodeFor maps an error to the exit code it stands for.
// Unclassified errors are execution failures.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, ErrInvalidArguments):
		return ExitCodeParseError
	case errors.Is(err, ErrCommandNotImplemented):
		return ExitCodeNotImplemented
	case errors.Is(err, ErrProjectResolution):
		return ExitCodeResolutionFailed
	case errors.Is(err, ErrBuildFailed):
		return ExitCodeBuildFailed
	default:
		return ExitCodeExecutionFailed
	}
}

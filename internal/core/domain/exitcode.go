package domain

import "errors"

// Exit codes returned by the rig binaries.
const (
	// ExitSuccess indicates every requested stage completed.
	ExitSuccess = 0

	// ExitFailure indicates a failure outside the stage taxonomy.
	ExitFailure = 1

	// ExitToolMissing indicates a required collaborator tool could not be found.
	ExitToolMissing = 2

	// ExitConfigureFailed indicates the build-file generator failed.
	ExitConfigureFailed = 3

	// ExitBuildFailed indicates the build executor failed.
	ExitBuildFailed = 4

	// ExitNoExecutable indicates no executable was found to run.
	ExitNoExecutable = 5

	// ExitExecutableFailed indicates the launched executable returned non-zero.
	ExitExecutableFailed = 6

	// ExitLaunchFailed indicates the executable could not be launched.
	ExitLaunchFailed = 7

	// ExitInterrupted indicates the run was interrupted by the user.
	ExitInterrupted = 130
)

// exitCodes is ordered: interruption wins over whatever stage it surfaced in.
var exitCodes = []struct {
	err  error
	code int
}{
	{ErrInterrupted, ExitInterrupted},
	{ErrToolMissing, ExitToolMissing},
	{ErrConfigureFailed, ExitConfigureFailed},
	{ErrBuildFailed, ExitBuildFailed},
	{ErrNoExecutable, ExitNoExecutable},
	{ErrExecutableFailed, ExitExecutableFailed},
	{ErrLaunchFailed, ExitLaunchFailed},
}

// ExitCode maps an error returned by the application layer to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	for _, e := range exitCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ExitFailure
}

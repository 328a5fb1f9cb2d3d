package domain

import "go.trai.ch/zerr"

var (
	// ErrToolMissing is returned when a required collaborator tool cannot be resolved on PATH.
	ErrToolMissing = zerr.New("required tool not found in PATH")

	// ErrConfigureFailed is returned when the build-file generator fails.
	ErrConfigureFailed = zerr.New("configure failed")

	// ErrBuildFailed is returned when the build executor fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoExecutable is returned when the run stage finds no produced executable.
	ErrNoExecutable = zerr.New("no executable found in working directory")

	// ErrExecutableFailed is returned when the launched executable exits with a non-zero status.
	ErrExecutableFailed = zerr.New("executable exited with non-zero status")

	// ErrLaunchFailed is returned when the produced executable cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch executable")

	// ErrInterrupted is returned when the run is interrupted by a signal.
	ErrInterrupted = zerr.New("interrupted by user")

	// ErrCommandNotFound is returned when a command cannot be found while starting it.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrCommandStartFailed is returned when a command exists but cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrWorkdirReadFailed is returned when the working directory cannot be enumerated.
	ErrWorkdirReadFailed = zerr.New("failed to read working directory")

	// ErrManifestNotFound is returned when no dependency manifest can be found.
	ErrManifestNotFound = zerr.New("could not find dependency manifest")

	// ErrManifestReadFailed is returned when the dependency manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read dependency manifest")

	// ErrManifestParseFailed is returned when the dependency manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse dependency manifest")

	// ErrInvalidRepoSpec is returned when a manifest entry is missing required fields or has invalid values.
	ErrInvalidRepoSpec = zerr.New("invalid repository entry")

	// ErrDestResetFailed is returned when the dependency destination directory cannot be recreated.
	ErrDestResetFailed = zerr.New("failed to reset destination directory")

	// ErrCloneFailed is returned when cloning a single repository fails.
	ErrCloneFailed = zerr.New("clone failed")

	// ErrUnshallowFailed is returned when converting a shallow clone to full history fails.
	ErrUnshallowFailed = zerr.New("unshallow failed")

	// ErrFetchFailed is returned when at least one requested repository could not be cloned.
	ErrFetchFailed = zerr.New("dependency fetch failed")
)

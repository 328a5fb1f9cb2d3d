package domain

import "slices"

// Stage names a step of the orchestrator pipeline.
type Stage string

const (
	// StageClean removes working-directory entries.
	StageClean Stage = "clean"
	// StageConfigure runs the build-file generator.
	StageConfigure Stage = "configure"
	// StageBuild runs the build executor.
	StageBuild Stage = "build"
	// StageRun launches the produced executable.
	StageRun Stage = "run"
)

func (s Stage) String() string {
	return string(s)
}

// Invocation is the set of flags a single orchestrator run was started with.
// It is derived once from the command line and never mutated.
type Invocation struct {
	Clean   bool
	Build   bool
	Run     bool
	Compact bool
}

// ShouldConfigure reports whether the configure stage runs.
// Configure is the default action when neither build nor run is requested.
func (i Invocation) ShouldConfigure() bool {
	return i.Build || !i.Run
}

// NeedsBuild reports whether the build executor runs.
func (i Invocation) NeedsBuild() bool {
	return i.Build || i.Run
}

// ShouldRun reports whether the produced executable is launched.
func (i Invocation) ShouldRun() bool {
	return i.Run
}

// Stages returns the stages this invocation executes, in order.
func (i Invocation) Stages() []Stage {
	var stages []Stage
	if i.Clean {
		stages = append(stages, StageClean)
	}
	if i.ShouldConfigure() {
		stages = append(stages, StageConfigure)
	}
	if i.NeedsBuild() {
		stages = append(stages, StageBuild)
	}
	if i.ShouldRun() {
		stages = append(stages, StageRun)
	}
	return stages
}

// Workdir is the directory the orchestrator operates on.
type Workdir struct {
	// Path is the working directory.
	Path string
	// Self holds the base names the invoking program is known by: the name it
	// was launched as and the name of the resolved executable. None of them is
	// removed by clean or launched by run.
	Self []string
}

// IsSelf reports whether name is one of the invoking program's names.
func (w Workdir) IsSelf(name string) bool {
	return slices.Contains(w.Self, name)
}

// Removal is the outcome of removing one working-directory entry.
type Removal struct {
	Path string
	Err  error
}

// Failed returns the removals that did not succeed.
func Failed(removals []Removal) []Removal {
	var failed []Removal
	for _, r := range removals {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

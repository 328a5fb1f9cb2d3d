package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestInvocation_Stages(t *testing.T) {
	tests := []struct {
		name string
		inv  domain.Invocation
		want []domain.Stage
	}{
		{
			name: "no flags configures only",
			inv:  domain.Invocation{},
			want: []domain.Stage{domain.StageConfigure},
		},
		{
			name: "build configures and builds",
			inv:  domain.Invocation{Build: true},
			want: []domain.Stage{domain.StageConfigure, domain.StageBuild},
		},
		{
			name: "run builds and runs without configure",
			inv:  domain.Invocation{Run: true},
			want: []domain.Stage{domain.StageBuild, domain.StageRun},
		},
		{
			name: "build and run",
			inv:  domain.Invocation{Build: true, Run: true},
			want: []domain.Stage{domain.StageConfigure, domain.StageBuild, domain.StageRun},
		},
		{
			name: "clean alone still configures",
			inv:  domain.Invocation{Clean: true},
			want: []domain.Stage{domain.StageClean, domain.StageConfigure},
		},
		{
			name: "clean and build",
			inv:  domain.Invocation{Clean: true, Build: true},
			want: []domain.Stage{domain.StageClean, domain.StageConfigure, domain.StageBuild},
		},
		{
			name: "clean and run",
			inv:  domain.Invocation{Clean: true, Run: true},
			want: []domain.Stage{domain.StageClean, domain.StageBuild, domain.StageRun},
		},
		{
			name: "everything",
			inv:  domain.Invocation{Clean: true, Build: true, Run: true},
			want: []domain.Stage{domain.StageClean, domain.StageConfigure, domain.StageBuild, domain.StageRun},
		},
		{
			name: "compact has no functional effect",
			inv:  domain.Invocation{Compact: true},
			want: []domain.Stage{domain.StageConfigure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv.Stages())
		})
	}
}

func TestExitCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, domain.ExitSuccess},
		{"unclassified", cause, domain.ExitFailure},
		{"tool missing", errors.Join(domain.ErrToolMissing, cause), domain.ExitToolMissing},
		{"configure", errors.Join(domain.ErrConfigureFailed, cause), domain.ExitConfigureFailed},
		{"build", errors.Join(domain.ErrBuildFailed, cause), domain.ExitBuildFailed},
		{"no executable", domain.ErrNoExecutable, domain.ExitNoExecutable},
		{"executable failed", errors.Join(domain.ErrExecutableFailed, cause), domain.ExitExecutableFailed},
		{"launch failed", errors.Join(domain.ErrLaunchFailed, cause), domain.ExitLaunchFailed},
		{"interrupted", errors.Join(domain.ErrInterrupted, cause), domain.ExitInterrupted},
		{
			name: "interruption wins over stage failure",
			err:  errors.Join(domain.ErrBuildFailed, errors.Join(domain.ErrInterrupted, cause)),
			want: domain.ExitInterrupted,
		},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("outer: %w", errors.Join(domain.ErrConfigureFailed, cause)),
			want: domain.ExitConfigureFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestToolchain_Commands(t *testing.T) {
	tc := domain.DefaultToolchain()

	configure := tc.ConfigureCommand("/work/build")
	assert.Equal(t, "cmake", configure.Name)
	assert.Equal(t, "/work/build", configure.Dir)
	assert.Equal(t, []string{
		"..",
		"-G", "Ninja",
		"-DCMAKE_C_COMPILER=clang-cl",
		"-DCMAKE_CXX_COMPILER=clang-cl",
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
	}, configure.Args)

	build := tc.BuildCommand("/work/build")
	assert.Equal(t, "ninja", build.Name)
	assert.Empty(t, build.Args)

	assert.Equal(t, []string{"cmake"}, tc.ConfigureTools())
	assert.Equal(t, []string{"ninja", "clang-cl"}, tc.BuildTools())

	tc.CCompiler = "clang"
	tc.CXXCompiler = "clang++"
	assert.Equal(t, []string{"ninja", "clang++", "clang"}, tc.BuildTools())
}

func TestCommand_String(t *testing.T) {
	cmd := domain.NewCommand("", "cmake", "..", "-G", "Unix Makefiles")
	assert.Equal(t, `cmake .. -G "Unix Makefiles"`, cmd.String())

	assert.Equal(t, `git clone "" dest`, domain.NewCommand("", "git", "clone", "", "dest").String())
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 3")
	err := &domain.CommandError{
		Command:  domain.NewCommand("", "ninja"),
		ExitCode: 3,
		Err:      cause,
	}

	assert.Equal(t, `command "ninja" exited with code 3`, err.Error())
	require.ErrorIs(t, err, cause)

	var target *domain.CommandError
	require.ErrorAs(t, zerr.Wrap(err, "build failed"), &target)
	assert.Equal(t, 3, target.ExitCode)
}

func TestFailed(t *testing.T) {
	removals := []domain.Removal{
		{Path: "a"},
		{Path: "b", Err: errors.New("busy")},
		{Path: "c"},
	}

	failed := domain.Failed(removals)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Path)
}

func TestRepoSpec_CloneDir(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://github.com/libsdl-org/SDL.git", "SDL"},
		{"https://github.com/raysan5/raylib", "raylib"},
		{"https://github.com/raysan5/raylib/", "raylib"},
		{"git@github.com:ocornut/imgui.git", "imgui"},
		{"/srv/mirrors/glm.git", "glm"},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			spec := domain.RepoSpec{Link: tt.link}
			assert.Equal(t, tt.want, spec.CloneDir())
		})
	}
}

func TestManifest(t *testing.T) {
	m := domain.NewManifest(
		domain.RepoSpec{Name: "sdl", Link: "https://example.com/SDL.git", Depth: 1},
		domain.RepoSpec{Name: "imgui", Link: "https://example.com/imgui.git"},
	)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"imgui", "sdl"}, m.Names())

	spec, ok := m.Lookup("sdl")
	require.True(t, ok)
	assert.True(t, spec.Shallow())

	_, ok = m.Lookup("missing")
	assert.False(t, ok)
}

func TestUniqueNames(t *testing.T) {
	got := domain.UniqueNames([]string{"sdl", "imgui", "sdl", "glm", "imgui"})
	assert.Equal(t, []string{"sdl", "imgui", "glm"}, got)
}

func TestFetchReport_Count(t *testing.T) {
	report := &domain.FetchReport{Outcomes: []domain.FetchOutcome{
		{Name: "a", Status: domain.FetchCloned},
		{Name: "b", Status: domain.FetchNotFound},
		{Name: "c", Status: domain.FetchCloned},
	}}

	assert.Equal(t, 2, report.Count(domain.FetchCloned))
	assert.Equal(t, 1, report.Count(domain.FetchNotFound))
	assert.Equal(t, 0, report.Count(domain.FetchFailed))
}

func TestWorkdir_IsSelf(t *testing.T) {
	wd := domain.Workdir{Path: "/work/build", Self: []string{"launch", "rig"}}

	assert.True(t, wd.IsSelf("launch"))
	assert.True(t, wd.IsSelf("rig"))
	assert.False(t, wd.IsSelf("game"))
	assert.False(t, domain.Workdir{}.IsSelf("rig"))
}

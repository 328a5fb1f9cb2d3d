package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var (
	sdlSpec   = domain.RepoSpec{Name: "sdl", Link: "https://github.com/libsdl-org/SDL.git", Branch: "main", Depth: 1}
	imguiSpec = domain.RepoSpec{Name: "imgui", Link: "https://github.com/ocornut/imgui.git", Branch: "docking", Depth: 1, Unshallow: true}
	glmSpec   = domain.RepoSpec{Name: "glm", Link: "https://github.com/g-truc/glm"}
)

type fetcherFixture struct {
	locator   *mocks.MockToolLocator
	loader    *mocks.MockManifestLoader
	workspace *mocks.MockWorkspace
	cloner    *mocks.MockCloner
	logger    *mocks.MockLogger
	tracer    *recordingTracer
	fetcher   *app.Fetcher
	opts      app.FetchOptions
}

func newFetcherFixture(t *testing.T) *fetcherFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fetcherFixture{
		locator:   mocks.NewMockToolLocator(ctrl),
		loader:    mocks.NewMockManifestLoader(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		cloner:    mocks.NewMockCloner(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		tracer:    &recordingTracer{},
		opts:      app.FetchOptions{Dir: "/proj"},
	}
	f.fetcher = app.NewFetcher(f.locator, f.loader, f.workspace, f.cloner, f.tracer, f.logger)
	return f
}

// ready expects git to resolve, the manifest to load and the default destination to be reset.
func (f *fetcherFixture) ready(specs ...domain.RepoSpec) {
	f.locator.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
	f.loader.EXPECT().Load("/proj", "").Return(domain.NewManifest(specs...), nil)
	f.workspace.EXPECT().Reset(filepath.Join("/proj", "deps")).Return(nil)
}

func TestFetcher_UnknownNameReported(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec, imguiSpec)

	f.logger.EXPECT().Info("Flag nope not found in configuration.").Times(1)
	f.logger.EXPECT().Info("Cloning repository for flag: sdl").Times(1)
	f.logger.EXPECT().Info("Cloning repository for flag: imgui").Times(1)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	gomock.InOrder(
		f.cloner.EXPECT().Clone(gomock.Any(), sdlSpec, filepath.Join("/proj", "deps", "SDL"), domain.CloneOptions{}).Return(nil),
		f.cloner.EXPECT().Clone(gomock.Any(), imguiSpec, filepath.Join("/proj", "deps", "imgui"), domain.CloneOptions{}).Return(nil),
	)

	report, err := f.fetcher.Fetch(t.Context(), []string{"sdl", "nope", "imgui"}, f.opts)
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, domain.FetchCloned, report.Outcomes[0].Status)
	assert.Equal(t, filepath.Join("/proj", "deps", "SDL"), report.Outcomes[0].Dir)
	assert.Equal(t, domain.FetchNotFound, report.Outcomes[1].Status)
	assert.Equal(t, domain.FetchCloned, report.Outcomes[2].Status)
	assert.Equal(t, []string{"clone sdl", "clone imgui"}, f.tracer.spans())
}

func TestFetcher_DuplicatesClonedOnce(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.cloner.EXPECT().Clone(gomock.Any(), sdlSpec, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	report, err := f.fetcher.Fetch(t.Context(), []string{"sdl", "sdl"}, f.opts)
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 1)
}

func TestFetcher_NoNames(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec)

	report, err := f.fetcher.Fetch(t.Context(), nil, f.opts)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestFetcher_GitMissing(t *testing.T) {
	f := newFetcherFixture(t)
	f.locator.EXPECT().LookPath("git").Return("", errors.Join(domain.ErrToolMissing, errors.New("git")))

	_, err := f.fetcher.Fetch(t.Context(), []string{"sdl"}, f.opts)
	assert.Equal(t, domain.ExitToolMissing, domain.ExitCode(err))
}

func TestFetcher_ManifestErrorLeavesDestinationUntouched(t *testing.T) {
	f := newFetcherFixture(t)
	f.locator.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
	f.loader.EXPECT().Load("/proj", "").Return(nil, errors.Join(domain.ErrManifestParseFailed, errors.New("bad json")))
	// No workspace expectations: Reset must not be called.

	_, err := f.fetcher.Fetch(t.Context(), []string{"sdl"}, f.opts)
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(err))
}

func TestFetcher_ResetFailure(t *testing.T) {
	f := newFetcherFixture(t)
	f.locator.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
	f.loader.EXPECT().Load("/proj", "").Return(domain.NewManifest(sdlSpec), nil)
	f.workspace.EXPECT().Reset(gomock.Any()).Return(errors.New("read-only file system"))

	_, err := f.fetcher.Fetch(t.Context(), []string{"sdl"}, f.opts)
	require.ErrorIs(t, err, domain.ErrDestResetFailed)
}

func TestFetcher_CloneFailureContinues(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec, imguiSpec)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	cloneErr := errors.Join(domain.ErrCloneFailed, errors.New("exit status 128"))
	f.cloner.EXPECT().Clone(gomock.Any(), sdlSpec, gomock.Any(), gomock.Any()).Return(cloneErr)
	f.cloner.EXPECT().Clone(gomock.Any(), imguiSpec, gomock.Any(), gomock.Any()).Return(nil)

	report, err := f.fetcher.Fetch(t.Context(), []string{"sdl", "imgui"}, f.opts)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(err))

	assert.Equal(t, 1, report.Count(domain.FetchFailed))
	assert.Equal(t, 1, report.Count(domain.FetchCloned))
	require.ErrorIs(t, report.Outcomes[0].Err, domain.ErrCloneFailed)
}

func TestFetcher_Options(t *testing.T) {
	f := newFetcherFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.locator.EXPECT().LookPath("git").Return("/usr/bin/git", nil)
	f.loader.EXPECT().Load("/proj", "conf/libs.yaml").Return(domain.NewManifest(glmSpec), nil)
	f.workspace.EXPECT().Reset(filepath.Join("/proj", "third_party")).Return(nil)
	f.cloner.EXPECT().
		Clone(gomock.Any(), glmSpec, filepath.Join("/proj", "third_party", "glm"), domain.CloneOptions{ShallowSubmodules: true}).
		Return(nil)

	_, err := f.fetcher.Fetch(t.Context(), []string{"glm"}, app.FetchOptions{
		Dir:               "/proj",
		ManifestPath:      "conf/libs.yaml",
		DestDir:           "third_party",
		ShallowSubmodules: true,
	})
	require.NoError(t, err)
}

func TestFetcher_Interrupted(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec, imguiSpec, glmSpec)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(t.Context())
	f.cloner.EXPECT().Clone(gomock.Any(), sdlSpec, gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.RepoSpec, string, domain.CloneOptions) error {
			cancel()
			return errors.Join(domain.ErrCloneFailed, domain.ErrInterrupted)
		})

	report, err := f.fetcher.Fetch(ctx, []string{"sdl", "imgui", "glm"}, f.opts)
	assert.Equal(t, domain.ExitInterrupted, domain.ExitCode(err))
	assert.Equal(t, 2, report.Count(domain.FetchSkipped))
}

func TestFetcher_ParallelJobs(t *testing.T) {
	f := newFetcherFixture(t)
	f.ready(sdlSpec, imguiSpec, glmSpec)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	// Every clone blocks until all three are running at once.
	var started sync.WaitGroup
	started.Add(3)
	all := make(chan struct{})
	go func() {
		started.Wait()
		close(all)
	}()

	f.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.RepoSpec, string, domain.CloneOptions) error {
			started.Done()
			select {
			case <-all:
				return nil
			case <-time.After(5 * time.Second):
				return errors.New("clones did not overlap")
			}
		}).Times(3)

	opts := f.opts
	opts.Jobs = 3
	report, err := f.fetcher.Fetch(t.Context(), []string{"sdl", "imgui", "glm"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Count(domain.FetchCloned))
}

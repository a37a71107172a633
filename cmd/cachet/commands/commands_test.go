package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/cmd/cachet/commands"
	"go.trai.ch/cachet/internal/adapters/telemetry"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.trai.ch/cachet/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli     *commands.CLI
	out     *bytes.Buffer
	loader  *mocks.MockConfigLoader
	store   *mocks.MockSnapshotStore
	sources *mocks.MockSources
	logger  *mocks.MockLogger
}

func newCLIFixture(ctrl *gomock.Controller) *cliFixture {
	f := &cliFixture{
		out:     &bytes.Buffer{},
		loader:  mocks.NewMockConfigLoader(ctrl),
		store:   mocks.NewMockSnapshotStore(ctrl),
		sources: mocks.NewMockSources(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}

	props := mocks.NewMockPropertyStore(ctrl)
	tracer := telemetry.NewNoOpTracer()
	application := app.New(
		f.loader,
		evaluator.New(f.sources, props, tracer),
		f.store,
		f.sources,
		props,
		tracer,
		f.logger,
	)

	f.cli = commands.New(&app.Components{App: application, Logger: f.logger})
	f.cli.SetOutput(f.out, f.out)
	return f
}

// singleEnvManifest builds a validated manifest with one env provider.
func singleEnvManifest(t *testing.T) *domain.Manifest {
	t.Helper()

	g := domain.NewGraph()
	require.NoError(t, g.AddProvider(&domain.Provider{
		Name: domain.NewInternedString("toolchain"),
		Kind: domain.ProviderEnv,
		Key:  "TOOLCHAIN",
	}))
	require.NoError(t, g.Validate())

	return &domain.Manifest{Graph: g, ConfigPath: domain.ConfigFileName}
}

func TestRunCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.loader.EXPECT().Load(".").Return(singleEnvManifest(t), nil)
	f.store.EXPECT().Get().Return(nil, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.sources.EXPECT().ObserveFile(domain.ConfigFileName).Return(
		"config", domain.Observation{Kind: domain.SourceFile, ID: domain.ConfigFileName, ValueHash: "aa"}, nil)
	f.sources.EXPECT().ObserveEnv("TOOLCHAIN").Return(
		"stable", domain.Observation{Kind: domain.SourceEnv, ID: "TOOLCHAIN", ValueHash: "bb"})
	f.logger.EXPECT().Info(gomock.Any())

	f.cli.SetArgs([]string{"run"})
	require.NoError(t, f.cli.Execute(context.Background()))

	require.Contains(t, f.out.String(), "configuration cache: STALE")
	require.Contains(t, f.out.String(), "toolchain = stable")
}

func TestRunCommand_NoCacheSkipsSnapshotLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.loader.EXPECT().Load(".").Return(singleEnvManifest(t), nil)
	// No Get expectation: --no-cache must not consult the store for the
	// previous snapshot.
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.sources.EXPECT().ObserveFile(domain.ConfigFileName).Return(
		"config", domain.Observation{Kind: domain.SourceFile, ID: domain.ConfigFileName, ValueHash: "aa"}, nil)
	f.sources.EXPECT().ObserveEnv("TOOLCHAIN").Return(
		"stable", domain.Observation{Kind: domain.SourceEnv, ID: "TOOLCHAIN", ValueHash: "bb"})
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	f.cli.SetArgs([]string{"run", "--no-cache"})
	require.NoError(t, f.cli.Execute(context.Background()))

	require.Contains(t, f.out.String(), "configuration cache: STALE")
}

func TestCleanCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer func() { _ = os.Chdir(cwd) }()

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, domain.CachetDirName, domain.CacheDirName), 0o750))

	f := newCLIFixture(ctrl)
	f.logger.EXPECT().Info(gomock.Any())

	f.cli.SetArgs([]string{"clean"})
	require.NoError(t, f.cli.Execute(context.Background()))

	_, err = os.Stat(filepath.Join(tmp, domain.CachetDirName))
	require.True(t, os.IsNotExist(err))
}

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))

	require.Contains(t, f.out.String(), "cachet version dev")
}

func TestRootHelp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.cli.SetArgs([]string{"--help"})
	require.NoError(t, f.cli.Execute(context.Background()))

	require.Contains(t, f.out.String(), "run")
	require.Contains(t, f.out.String(), "watch")
	require.Contains(t, f.out.String(), "clean")
}

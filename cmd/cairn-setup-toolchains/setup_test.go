package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/toolchain"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type setupFixture struct {
	query  *mocks.MockCompilerQuery
	finder *mocks.MockExecutableFinder
	store  *mocks.MockProfileStore
	setup  *setup
}

func newSetupFixture(t *testing.T) *setupFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &setupFixture{
		query:  mocks.NewMockCompilerQuery(ctrl),
		finder: mocks.NewMockExecutableFinder(ctrl),
		store:  mocks.NewMockProfileStore(ctrl),
	}
	f.setup = &setup{
		prober: toolchain.NewProberForOS(f.query, f.finder, logger, "linux"),
		store:  f.store,
		logger: logger,
	}
	return f
}

func profileNames(profiles []*domain.Profile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}

func TestSetup_CreateProfile(t *testing.T) {
	f := newSetupFixture(t)
	compiler := "/opt/cross/bin/x86_64-w64-mingw32-gcc"
	f.query.EXPECT().MachineName(compiler).Return("x86_64-w64-mingw32", nil)
	f.finder.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()

	var saved []*domain.Profile
	f.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(profiles []*domain.Profile) error {
		saved = profiles
		return nil
	})

	code, err := f.setup.execute(context.Background(), []string{compiler, "win64"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.Len(t, saved, 1)
	assert.Equal(t, "win64", saved[0].Name)
	assert.Equal(t, []string{domain.ToolchainMinGW, domain.ToolchainGCC}, saved[0].Toolchain)
	platform, _ := saved[0].Value(domain.PropTargetPlatform)
	assert.Equal(t, "windows", platform)
}

func TestSetup_RejectsNonMinGWMachine(t *testing.T) {
	f := newSetupFixture(t)
	compiler := "/usr/bin/gcc"
	f.query.EXPECT().MachineName(compiler).Return("x86_64-pc-linux-gnu", nil)

	code, err := f.setup.execute(context.Background(), []string{"--type", "mingw", compiler, "broken"})

	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "x86_64-pc-linux-gnu")
	assert.Equal(t, int(domain.ExitCodeExecutionFailed), code)
}

func TestSetup_Detect(t *testing.T) {
	f := newSetupFixture(t)
	f.finder.EXPECT().FindExecutable("gcc").Return("/usr/bin/gcc")
	f.finder.EXPECT().FindExecutable("clang").Return("")
	f.finder.EXPECT().FindExecutable(gomock.Any()).Return("").AnyTimes()
	f.finder.EXPECT().Exists(gomock.Any()).Return(true).AnyTimes()
	f.query.EXPECT().MachineName("/usr/bin/gcc").Return("x86_64-pc-linux-gnu", nil)

	var saved []*domain.Profile
	f.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(profiles []*domain.Profile) error {
		saved = profiles
		return nil
	})

	code, err := f.setup.execute(context.Background(), []string{"--detect"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"gcc"}, profileNames(saved))
}

func TestSetup_DetectNothingFound(t *testing.T) {
	f := newSetupFixture(t)
	f.finder.EXPECT().FindExecutable(gomock.Any()).Return("").AnyTimes()

	code, err := f.setup.execute(context.Background(), []string{"--detect"})

	require.ErrorIs(t, err, domain.ErrCompilerNotFound)
	assert.Equal(t, int(domain.ExitCodeExecutionFailed), code)
}

func TestSetup_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "missing profile name", args: []string{"/usr/bin/gcc"}},
		{name: "detect with arguments", args: []string{"--detect", "/usr/bin/gcc"}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSetupFixture(t)

			code, err := f.setup.execute(context.Background(), tt.args)

			require.ErrorIs(t, err, domain.ErrInvalidArguments)
			assert.Equal(t, int(domain.ExitCodeParseError), code)
		})
	}
}

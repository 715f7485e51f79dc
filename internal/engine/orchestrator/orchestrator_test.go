package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.trai.ch/cairn/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

var opts = domain.BuildOptions{MaxJobs: 2}

func TestRun_WholeForest(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockBuildGraphExecutor(ctrl)
	forest := domain.Forest{{Name: "demo", Configuration: "default"}}

	executor.EXPECT().BuildProjects(gomock.Any(), forest, opts).Return(nil)

	o := orchestrator.New(domain.WholeForest{Projects: forest}, executor, opts)
	assert.Equal(t, domain.BuildStateIdle, o.State())

	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, domain.BuildStateSucceeded, o.State())
}

func TestRun_ProductSubset(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockBuildGraphExecutor(ctrl)
	products := []*domain.ResolvedProduct{{Name: "appA"}}

	executor.EXPECT().BuildProducts(gomock.Any(), products, opts).Return(nil)

	o := orchestrator.New(domain.ProductSubset{Products: products}, executor, opts)
	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, domain.BuildStateSucceeded, o.State())
}

func TestRun_FailureWrapsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockBuildGraphExecutor(ctrl)
	cause := errors.New("compiler exploded")

	executor.EXPECT().BuildProjects(gomock.Any(), gomock.Any(), gomock.Any()).Return(cause)

	o := orchestrator.New(domain.WholeForest{}, executor, opts)
	err := o.Run(context.Background())

	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, domain.ExitCodeBuildFailed, domain.ExitCodeFor(err))
	assert.Equal(t, domain.BuildStateFailed, o.State())
}

func TestRun_PanicFailsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockBuildGraphExecutor(ctrl)

	executor.EXPECT().BuildProducts(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []*domain.ResolvedProduct, domain.BuildOptions) error {
			panic("boom")
		})

	o := orchestrator.New(domain.ProductSubset{}, executor, opts)
	err := o.Run(context.Background())

	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, domain.BuildStateFailed, o.State())
}

func TestRun_ExactlyOnePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockBuildGraphExecutor(ctrl)

	executor.EXPECT().BuildProjects(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	o := orchestrator.New(domain.WholeForest{}, executor, opts)
	require.NoError(t, o.Run(context.Background()))

	err := o.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrBuildPassStarted)
	assert.Equal(t, domain.BuildStateSucceeded, o.State())
}

func TestRun_StateWhileRunning(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockBuildGraphExecutor(ctrl)

		executor.EXPECT().BuildProjects(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, domain.Forest, domain.BuildOptions) error {
				time.Sleep(time.Minute)
				return nil
			})

		o := orchestrator.New(domain.WholeForest{}, executor, opts)

		done := make(chan error, 1)
		go func() { done <- o.Run(context.Background()) }()

		time.Sleep(time.Second)
		assert.Equal(t, domain.BuildStateRunning, o.State())

		err := o.Run(context.Background())
		require.ErrorIs(t, err, domain.ErrBuildPassStarted)

		require.NoError(t, <-done)
		assert.Equal(t, domain.BuildStateSucceeded, o.State())
	})
}

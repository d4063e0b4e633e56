//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/scheduler"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
	commandsmock "github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func schedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Enabled:          true,
		RatingSweepSpec:  "0 3 * * *",
		DistributionSpec: "@every 1h",
	}
}

func TestScheduler_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	ratings := commandsmock.NewMockRatingCommands(ctrl)
	distribution := commandsmock.NewMockDistributionCommands(ctrl)

	s, err := scheduler.New(schedulerConfig(), ratings, distribution)
	require.NoError(t, err)

	ratings.EXPECT().RecalculateAll(gomock.Any()).Return(12, nil).Times(1)
	require.NoError(t, s.RunNow(scheduler.JobRatingSweep))

	distribution.EXPECT().DistributeAll(gomock.Any()).
		Return(&commands.DistributionReport{Vouchers: 2, Granted: 7}, nil).Times(1)
	require.NoError(t, s.RunNow(scheduler.JobVoucherDistribution))

	assert.Error(t, s.RunNow("nope"))
}

func TestScheduler_JobFailureIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	ratings := commandsmock.NewMockRatingCommands(ctrl)
	distribution := commandsmock.NewMockDistributionCommands(ctrl)

	s, err := scheduler.New(schedulerConfig(), ratings, distribution)
	require.NoError(t, err)

	ratings.EXPECT().RecalculateAll(gomock.Any()).Return(0, errors.New("db down")).Times(1)
	assert.NotPanics(t, func() { _ = s.RunNow(scheduler.JobRatingSweep) })
}

func TestScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, err := scheduler.New(schedulerConfig(), commandsmock.NewMockRatingCommands(ctrl), commandsmock.NewMockDistributionCommands(ctrl))
	require.NoError(t, err)

	s.Start()
	next, ok := s.Next(scheduler.JobVoucherDistribution)
	assert.True(t, ok)
	assert.False(t, next.IsZero())
	require.NoError(t, s.Stop(context.Background()))
}

func TestNew_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := schedulerConfig()
	cfg.RatingSweepSpec = "every tuesday"

	_, err := scheduler.New(cfg, commandsmock.NewMockRatingCommands(ctrl), commandsmock.NewMockDistributionCommands(ctrl))

	require.Error(t, err)
	assert.Contains(t, err.Error(), scheduler.JobRatingSweep)
}

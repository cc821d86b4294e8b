package service

import (
	"context"
	"testing"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluationService(f *fixture) *EvaluationService {
	return NewEvaluationService(f.results, f.calendar, f.cache)
}

func TestEvaluationService_PassingSecondEvaluationUnlocksNextModule(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 24, 9))
	svc := newEvaluationService(f)
	ctx := context.Background()

	// Module 2 is locked and the snapshot is cached.
	access, err := f.calendar.CheckModuleAccess(ctx, 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusLocked, access.Status)

	result, err := svc.RecordResult(ctx, 7, RecordResultRequest{
		LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 2, Score: 6, MaxScore: 10,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, f.now, result.CompletedAt)
	assert.Equal(t, 1, f.cache.invalidations)

	completed, err := svc.CompletedModules(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, completed)

	access, err = f.calendar.CheckModuleAccess(ctx, 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusInProgress, access.Status)
}

func TestEvaluationService_FailedOrFirstEvaluationKeepsCache(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 24, 9))
	svc := newEvaluationService(f)
	ctx := context.Background()

	result, err := svc.RecordResult(ctx, 7, RecordResultRequest{
		LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 2, Score: 59, MaxScore: 100,
	})
	require.NoError(t, err)
	assert.False(t, result.Passed)

	result, err = svc.RecordResult(ctx, 7, RecordResultRequest{
		LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 1, Score: 100, MaxScore: 100,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)

	assert.Zero(t, f.cache.invalidations)

	results, err := svc.ListResults(ctx, 7, 1)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	completed, err := svc.CompletedModules(ctx, 7, 1)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestEvaluationService_RecordResultRejections(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		req     RecordResultRequest
		wantErr error
	}{
		{
			name:    "score above max",
			now:     santiago(2026, time.March, 24, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 1, Score: 11, MaxScore: 10},
			wantErr: util.ErrInvalidScore,
		},
		{
			name:    "negative score",
			now:     santiago(2026, time.March, 24, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 1, Score: -1, MaxScore: 10},
			wantErr: util.ErrInvalidScore,
		},
		{
			name:    "module locked",
			now:     santiago(2026, time.March, 27, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 2, EvaluationNumber: 1, Score: 5, MaxScore: 10},
			wantErr: util.ErrModuleLocked,
		},
		{
			name:    "before the program",
			now:     santiago(2026, time.March, 1, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 1, Score: 5, MaxScore: 10},
			wantErr: util.ErrModuleLocked,
		},
		{
			name:    "evaluation not released",
			now:     santiago(2026, time.March, 15, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 2, Score: 5, MaxScore: 10},
			wantErr: util.ErrEvaluationNotReleased,
		},
		{
			name:    "module out of range",
			now:     santiago(2026, time.March, 15, 9),
			req:     RecordResultRequest{LevelSubjectID: 1, ModuleNumber: 16, EvaluationNumber: 1, Score: 5, MaxScore: 10},
			wantErr: calendar.ErrModuleOutOfRange,
		},
		{
			name:    "unknown program",
			now:     santiago(2026, time.March, 15, 9),
			req:     RecordResultRequest{LevelSubjectID: 42, ModuleNumber: 1, EvaluationNumber: 1, Score: 5, MaxScore: 10},
			wantErr: util.ErrLevelSubjectNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)
			_, err := newEvaluationService(f).RecordResult(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.results.rows)
		})
	}
}

func TestEvaluationService_ResultRecordedDuringScheduleReadIsNotMaskedByCache(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 24, 9))
	svc := newEvaluationService(f)
	ctx := context.Background()

	// The result lands after the schedule read loaded its database snapshot
	// but before that snapshot reaches the cache.
	hooked := &hookedResults{fakeResults: f.results}
	hooked.afterRead = func() {
		_, err := svc.RecordResult(ctx, 7, RecordResultRequest{
			LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 2, Score: 10, MaxScore: 10,
		})
		require.NoError(t, err)
	}
	f.calendar.Results = hooked

	_, err := f.calendar.GetSchedule(ctx, 7, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.invalidations)
	assert.Equal(t, 1, f.cache.rejectedSets)

	access, err := f.calendar.CheckModuleAccess(ctx, 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, calendar.StatusInProgress, access.Status)
	assert.Empty(t, access.Reason)

	completed, err := svc.CompletedModules(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, completed)
}

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

func newLinkService(f *fixture) (*EvaluationLinkService, *fakeLinks) {
	links := newFakeLinks()
	return NewEvaluationLinkService(links, f.levelSubjects, f.calendar), links
}

func TestEvaluationLinkService_CreateComputesReleaseDate(t *testing.T) {
	f := newFixture(t, santiago(2026, time.June, 24, 8))
	svc, _ := newLinkService(f)

	v, err := svc.Create(context.Background(), EvaluationLinkRequest{
		LevelSubjectID: 1, ModuleNumber: 8, EvaluationNumber: 1,
		Title: "Control 1", URL: "https://forms.example.com/m8e1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "2026-06-24", ymd(v.ReleaseDate))
	assert.Equal(t, "miércoles 24 de junio, 2026", v.ReleaseFormatted)
	assert.True(t, v.IsReleased)

	v, err = svc.Create(context.Background(), EvaluationLinkRequest{
		LevelSubjectID: 1, ModuleNumber: 8, EvaluationNumber: 4, URL: "https://forms.example.com/m8e4",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-03", ymd(v.ReleaseDate))
	assert.False(t, v.IsReleased)
}

func TestEvaluationLinkService_CreateValidation(t *testing.T) {
	f := newFixture(t, santiago(2026, time.June, 24, 8))
	svc, links := newLinkService(f)
	ctx := context.Background()

	_, err := svc.Create(ctx, EvaluationLinkRequest{LevelSubjectID: 1, ModuleNumber: 16, EvaluationNumber: 1, URL: "https://x.example"})
	assert.ErrorIs(t, err, calendar.ErrModuleOutOfRange)

	_, err = svc.Create(ctx, EvaluationLinkRequest{LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 5, URL: "https://x.example"})
	assert.ErrorIs(t, err, calendar.ErrEvaluationOutOfRange)

	_, err = svc.Create(ctx, EvaluationLinkRequest{LevelSubjectID: 9, ModuleNumber: 1, EvaluationNumber: 1, URL: "https://x.example"})
	assert.ErrorIs(t, err, util.ErrLevelSubjectNotFound)

	assert.Empty(t, links.rows)
}

func TestEvaluationLinkService_ListUpdateDelete(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 12, 8))
	svc, _ := newLinkService(f)
	ctx := context.Background()

	for _, m := range []int{2, 1, 1} {
		_, err := svc.Create(ctx, EvaluationLinkRequest{LevelSubjectID: 1, ModuleNumber: m, EvaluationNumber: 1, URL: "https://x.example"})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ModuleNumber)
	assert.True(t, all[0].IsReleased)
	assert.False(t, all[2].IsReleased)

	first, err := svc.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, first, 2)

	updated, err := svc.Update(ctx, first[0].ID, EvaluationLinkRequest{
		LevelSubjectID: 1, ModuleNumber: 1, EvaluationNumber: 3, Title: "Control 3", URL: "https://y.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Control 3", updated.Title)
	assert.Equal(t, "2026-03-18", ymd(updated.ReleaseDate))

	_, err = svc.Update(ctx, first[0].ID, EvaluationLinkRequest{LevelSubjectID: 1, ModuleNumber: 99, EvaluationNumber: 1, URL: "https://y.example"})
	assert.ErrorIs(t, err, calendar.ErrModuleOutOfRange)

	require.NoError(t, svc.Delete(ctx, first[0].ID))
	_, err = svc.Get(ctx, first[0].ID)
	assert.ErrorIs(t, err, util.ErrEvaluationLinkMissing)
	assert.ErrorIs(t, svc.Delete(ctx, first[0].ID), util.ErrEvaluationLinkMissing)
	_, err = svc.Update(ctx, "missing", EvaluationLinkRequest{})
	assert.ErrorIs(t, err, util.ErrEvaluationLinkMissing)
}

func TestEvaluationLinkService_StaleLinkHasNoReleaseDate(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 12, 8))
	svc, _ := newLinkService(f)
	ctx := context.Background()

	v, err := svc.Create(ctx, EvaluationLinkRequest{LevelSubjectID: 1, ModuleNumber: 15, EvaluationNumber: 1, URL: "https://x.example"})
	require.NoError(t, err)

	cfg := calendar.DefaultConfig()
	cfg.TotalModules = 10
	require.NoError(t, f.calendar.Reload(cfg))

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.ReleaseDate.IsZero())
	assert.False(t, got.IsReleased)
}

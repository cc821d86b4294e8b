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

func newCatalogService(f *fixture) *CatalogService {
	return NewCatalogService(f.levelSubjects, f.objectives, f.calendar)
}

func TestCatalogService_LevelSubjects(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 12, 8))
	svc := newCatalogService(f)
	ctx := context.Background()

	inactive := false
	ls, err := svc.CreateLevelSubject(ctx, LevelSubjectRequest{LevelName: "2° Medio", SubjectName: "Historia", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, ls.IsActive)

	ls2, err := svc.CreateLevelSubject(ctx, LevelSubjectRequest{LevelName: "2° Medio", SubjectName: "Química"})
	require.NoError(t, err)
	assert.True(t, ls2.IsActive)

	active, err := svc.ListLevelSubjects(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := svc.ListLevelSubjects(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	updated, err := svc.UpdateLevelSubject(ctx, ls.ID, LevelSubjectRequest{LevelName: "2° Medio", SubjectName: "Historia y Geografía"})
	require.NoError(t, err)
	assert.Equal(t, "Historia y Geografía", updated.SubjectName)
	assert.False(t, updated.IsActive)

	require.NoError(t, svc.DeleteLevelSubject(ctx, ls.ID))
	_, err = svc.GetLevelSubject(ctx, ls.ID)
	assert.ErrorIs(t, err, util.ErrLevelSubjectNotFound)
	assert.ErrorIs(t, svc.DeleteLevelSubject(ctx, ls.ID), util.ErrLevelSubjectNotFound)
}

func TestCatalogService_Objectives(t *testing.T) {
	f := newFixture(t, santiago(2026, time.March, 12, 8))
	svc := newCatalogService(f)
	ctx := context.Background()

	o1, err := svc.CreateObjective(ctx, 1, ObjectiveRequest{WeekNumber: 1, Code: "OA1", Title: "Números enteros"})
	require.NoError(t, err)
	o2, err := svc.CreateObjective(ctx, 1, ObjectiveRequest{WeekNumber: 2, Code: "OA2", Title: "Fracciones"})
	require.NoError(t, err)

	_, err = svc.CreateObjective(ctx, 1, ObjectiveRequest{WeekNumber: 1, Title: "Otra"})
	assert.ErrorIs(t, err, util.ErrObjectiveExists)

	_, err = svc.CreateObjective(ctx, 1, ObjectiveRequest{WeekNumber: 16, Title: "Fuera"})
	assert.ErrorIs(t, err, calendar.ErrModuleOutOfRange)

	_, err = svc.CreateObjective(ctx, 5, ObjectiveRequest{WeekNumber: 3, Title: "Sin programa"})
	assert.ErrorIs(t, err, util.ErrLevelSubjectNotFound)

	list, err := svc.ListObjectives(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].WeekNumber)

	_, err = svc.UpdateObjective(ctx, o2.ID, ObjectiveRequest{WeekNumber: 1, Title: "Fracciones"})
	assert.ErrorIs(t, err, util.ErrObjectiveExists)

	moved, err := svc.UpdateObjective(ctx, o2.ID, ObjectiveRequest{WeekNumber: 3, Code: "OA3", Title: "Fracciones"})
	require.NoError(t, err)
	assert.Equal(t, 3, moved.WeekNumber)

	same, err := svc.UpdateObjective(ctx, o1.ID, ObjectiveRequest{WeekNumber: 1, Code: "OA1", Title: "Enteros"})
	require.NoError(t, err)
	assert.Equal(t, "Enteros", same.Title)

	require.NoError(t, svc.DeleteObjective(ctx, o1.ID))
	assert.ErrorIs(t, svc.DeleteObjective(ctx, o1.ID), util.ErrObjectiveNotFound)
	_, err = svc.UpdateObjective(ctx, o1.ID, ObjectiveRequest{WeekNumber: 1, Title: "x"})
	assert.ErrorIs(t, err, util.ErrObjectiveNotFound)
}

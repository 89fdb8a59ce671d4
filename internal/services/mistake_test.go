package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relearnhq/relearn-backend/internal/pkg/apperr"
	"github.com/relearnhq/relearn-backend/internal/types"
)

func TestCreateMistakeSchedulesRetests(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()
	ctx := context.Background()

	before := time.Now().UTC()
	m, err := svc.Create(ctx, validInput(types.CategoryCareless))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.False(t, m.Mastered)
	assert.Equal(t, 0, m.RetestCount)
	assert.Nil(t, m.LastReviewedAt)
	assert.WithinDuration(t, before, m.CreatedAt, 5*time.Second)

	retests, err := env.retests.GetByMistakeID(ctx, nil, m.ID)
	require.NoError(t, err)
	require.Len(t, retests, 2, "careless schedules retests at +1d and +3d")

	for _, r := range retests {
		assert.False(t, r.Completed)
		assert.Nil(t, r.CompletedAt)
		assert.Empty(t, r.Result)
	}
	assert.WithinDuration(t, m.CreatedAt.AddDate(0, 0, 1), retests[0].ScheduledDate, time.Second)
	assert.WithinDuration(t, m.CreatedAt.AddDate(0, 0, 3), retests[1].ScheduledDate, time.Second)
}

func TestCreateMistakeValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*MistakeInput)
	}{
		{name: "empty title", mutate: func(in *MistakeInput) { in.Title = "  " }},
		{name: "empty description", mutate: func(in *MistakeInput) { in.Description = "" }},
		{name: "unknown category", mutate: func(in *MistakeInput) { in.Category = "cosmic" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(types.CategoryConceptual)
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			require.Error(t, err)
			assert.True(t, apperr.IsInvalidArgument(err))
		})
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed creates must not leave records behind")
}

func TestListMistakesNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput(types.CategoryConceptual))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(ctx, validInput(types.CategoryKnowledge))
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestUpdateMistakeKeepsScheduleAndProgress(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()
	ctx := context.Background()

	m, err := svc.Create(ctx, validInput(types.CategoryCareless))
	require.NoError(t, err)

	in := validInput(types.CategoryKnowledge)
	in.Title = "Mixed up integral bounds again"
	updated, err := svc.Update(ctx, m.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Mixed up integral bounds again", updated.Title)
	assert.Equal(t, types.CategoryKnowledge, updated.Category)
	assert.Equal(t, m.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, 0, updated.RetestCount)
	assert.False(t, updated.Mastered)

	// Changing category must not regenerate the already-created schedule:
	// still the two careless retests, not four knowledge ones.
	retests, err := env.retests.GetByMistakeID(ctx, nil, m.ID)
	require.NoError(t, err)
	assert.Len(t, retests, 2)
}

func TestUpdateMistakeNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()

	_, err := svc.Update(context.Background(), uuid.New(), validInput(types.CategoryConceptual))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteMistakeCascades(t *testing.T) {
	env := newTestEnv(t)
	svc := env.mistakeService()
	ctx := context.Background()

	m, err := svc.Create(ctx, validInput(types.CategoryKnowledge))
	require.NoError(t, err)
	keep, err := svc.Create(ctx, validInput(types.CategoryCareless))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	_, err = svc.Get(ctx, m.ID)
	assert.True(t, apperr.IsNotFound(err))

	orphans, err := env.retests.GetByMistakeID(ctx, nil, m.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "cascade must remove every retest of the deleted mistake")

	kept, err := env.retests.GetByMistakeID(ctx, nil, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 2, "unrelated records stay untouched")

	err = svc.Delete(ctx, m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

func TestAddNoteIsAnAnnotationOnly(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	actID := uuid.New()
	f.activities[actID] = models.Activity{ID: actID, Type: models.ActivityCompleted}

	note, err := svc.AddNote(context.Background(), actID, models.CreateNoteRequest{
		Content: "We should celebrate this one",
		Author:  "Holden",
	}, testNow)
	require.NoError(t, err)
	require.NotNil(t, note.ActivityID)
	assert.Equal(t, actID, *note.ActivityID)
	assert.False(t, note.IsResolved)

	// Notes write only the comment: no entity side effects, no extra activity.
	ops := f.lastWriteSet(t)
	require.Len(t, ops, 1)
	assert.Empty(t, activityInserts(ops))
}

func TestAddNoteValidation(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	_, err := svc.AddNote(context.Background(), uuid.New(), models.CreateNoteRequest{Content: "  "}, testNow)
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = svc.AddNote(context.Background(), uuid.New(), models.CreateNoteRequest{Content: "hi"}, testNow)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, f.writeSets)
}

func TestCreateReflection(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	r, err := svc.CreateReflection(context.Background(), models.CreateReflectionRequest{
		Type:    "learning",
		Content: "Scope smaller missions",
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-Q3", r.Quarter, "quarter defaults to the one derived from now")
	assert.Equal(t, 0, r.Votes)

	ops := f.lastWriteSet(t)
	require.Len(t, ops, 2)
	require.Len(t, activityInserts(ops), 1)

	_, err = svc.CreateReflection(context.Background(), models.CreateReflectionRequest{
		Type:    "rant",
		Content: "nope",
	}, testNow)
	assert.ErrorIs(t, err, ErrInvalidReflection)
}

func TestVoteReflection(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	id := uuid.New()
	f.reflections[id] = models.Reflection{ID: id, Type: "moment", Content: "Launch day", Votes: 2}

	r, err := svc.VoteReflection(context.Background(), id, "", testNow)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Votes)

	ops := f.lastWriteSet(t)
	require.Len(t, ops, 2)
	assert.Equal(t, 3, ops[0].Fields["votes"])
	require.Len(t, activityInserts(ops), 1)
}

func TestTogglePinReflection(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	id := uuid.New()
	f.reflections[id] = models.Reflection{ID: id, Type: "advice", Content: "Automate the checklist"}

	r, err := svc.TogglePinReflection(context.Background(), id, "", testNow)
	require.NoError(t, err)
	assert.True(t, r.IsPinned)

	ops := f.lastWriteSet(t)
	assert.Equal(t, true, ops[0].Fields["is_pinned"])

	acts := activityInserts(ops)
	require.Len(t, acts, 1)
	assert.Equal(t, "Pinned reflection: Automate the checklist", acts[0].Description)
}

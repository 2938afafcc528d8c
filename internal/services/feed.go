package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/progress"
	"github.com/mfalcone/okrdeck-api/internal/store"
)

// AddNote attaches a reflection note to an activity feed entry. Notes are
// annotations, not state changes: no objective or key result is touched and
// no extra activity is appended.
func (s *OKRService) AddNote(ctx context.Context, activityID uuid.UUID, req models.CreateNoteRequest, now time.Time) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if _, err := s.store.Activity(ctx, activityID); err != nil {
		return nil, err
	}

	note := &models.Comment{
		ID:         s.store.NewID(),
		ActivityID: &activityID,
		Content:    content,
		Author:     authorOr(req.Author),
		IsResolved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Transact(ctx, []store.Op{store.Insert(note)}); err != nil {
		return nil, err
	}
	return note, nil
}

// CreateReflection adds a planning-phase reflection for a quarter.
func (s *OKRService) CreateReflection(ctx context.Context, req models.CreateReflectionRequest, now time.Time) (*models.Reflection, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if !models.ReflectionTypes[req.Type] {
		return nil, ErrInvalidReflection
	}
	quarter := strings.TrimSpace(req.Quarter)
	if quarter == "" {
		quarter = progress.Quarter(now)
	}

	author := authorOr(req.Author)
	reflection := &models.Reflection{
		ID:        s.store.NewID(),
		Type:      req.Type,
		Content:   content,
		Author:    author,
		Votes:     0,
		Quarter:   quarter,
		IsPinned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.Transact(ctx, []store.Op{
		store.Insert(reflection),
		s.activityOp(models.ActivityCreated, "Added "+req.Type+" reflection for "+quarter, author, now),
	})
	if err != nil {
		return nil, err
	}
	return reflection, nil
}

// VoteReflection bumps a reflection's vote count by one.
func (s *OKRService) VoteReflection(ctx context.Context, id uuid.UUID, author string, now time.Time) (*models.Reflection, error) {
	reflection, err := s.store.Reflection(ctx, id)
	if err != nil {
		return nil, err
	}
	reflection.Votes++

	err = s.store.Transact(ctx, []store.Op{
		store.Update(&models.Reflection{ID: id}, map[string]any{
			"votes":      reflection.Votes,
			"updated_at": now,
		}),
		s.activityOp(models.ActivityUpdated, "Voted on reflection: "+reflection.Content, authorOr(author), now),
	})
	if err != nil {
		return nil, err
	}
	return reflection, nil
}

// TogglePinReflection flips whether a reflection carries forward into OKR
// formation.
func (s *OKRService) TogglePinReflection(ctx context.Context, id uuid.UUID, author string, now time.Time) (*models.Reflection, error) {
	reflection, err := s.store.Reflection(ctx, id)
	if err != nil {
		return nil, err
	}

	action := "Pinned"
	if reflection.IsPinned {
		action = "Unpinned"
	}
	reflection.IsPinned = !reflection.IsPinned

	err = s.store.Transact(ctx, []store.Op{
		store.Update(&models.Reflection{ID: id}, map[string]any{
			"is_pinned":  reflection.IsPinned,
			"updated_at": now,
		}),
		s.activityOp(models.ActivityUpdated, action+" reflection: "+reflection.Content, authorOr(author), now),
	})
	if err != nil {
		return nil, err
	}
	return reflection, nil
}

// Package services implements the aggregation and sync rules: each user
// action becomes the minimal consistent set of entity writes plus exactly
// one audit activity, submitted to the store as a single atomic write-set.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/progress"
	"github.com/mfalcone/okrdeck-api/internal/store"
)

const defaultAuthor = "Team"

type OKRService struct {
	store store.Store
	log   *zap.Logger
}

func NewOKRService(st store.Store, log *zap.Logger) *OKRService {
	return &OKRService{store: st, log: log}
}

func authorOr(author string) string {
	if strings.TrimSpace(author) == "" {
		return defaultAuthor
	}
	return strings.TrimSpace(author)
}

// activityOp builds the single audit record every write-set carries.
func (s *OKRService) activityOp(kind, description, author string, now time.Time) store.Op {
	return store.Insert(&models.Activity{
		ID:          s.store.NewID(),
		Type:        kind,
		Description: description,
		Author:      author,
		Timestamp:   now,
	})
}

// formatAmount renders key result numbers the way the dashboard shows them,
// without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CreateObjective inserts the objective, its key results, and the creation
// activity in one transaction. New objectives start active and on-track at
// zero progress, scoped to the quarter derived from now.
func (s *OKRService) CreateObjective(ctx context.Context, req models.CreateObjectiveRequest, now time.Time) (*models.Objective, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	valid := make([]models.KeyResultInput, 0, len(req.KeyResults))
	for _, in := range req.KeyResults {
		if strings.TrimSpace(in.Description) == "" {
			continue
		}
		if in.Target < 0 {
			return nil, ErrNegativeValue
		}
		valid = append(valid, in)
	}
	if len(valid) == 0 {
		return nil, ErrKeyResultsRequired
	}

	author := authorOr(req.Author)
	obj := &models.Objective{
		ID:          s.store.NewID(),
		Title:       title,
		Description: trimmedOrNil(req.Description),
		Quarter:     progress.Quarter(now),
		Status:      models.StatusActive,
		Health:      string(progress.HealthOnTrack),
		TargetDate:  req.TargetDate,
		CreatedBy:   author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ops := []store.Op{store.Insert(obj)}
	for _, in := range valid {
		owner := strings.TrimSpace(in.Owner)
		if owner == "" {
			owner = "Unassigned"
		}
		kr := &models.KeyResult{
			ID:          s.store.NewID(),
			ObjectiveID: obj.ID,
			Description: strings.TrimSpace(in.Description),
			Target:      in.Target,
			Current:     0,
			Unit:        in.Unit,
			Status:      string(progress.HealthOnTrack),
			Owner:       owner,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		obj.KeyResults = append(obj.KeyResults, *kr)
		ops = append(ops, store.Insert(kr))
	}
	ops = append(ops, s.activityOp(models.ActivityCreated, "Created OKR: "+title, author, now))

	if err := s.store.Transact(ctx, ops); err != nil {
		return nil, err
	}
	s.log.Info("objective created",
		zap.String("objective_id", obj.ID.String()),
		zap.String("quarter", obj.Quarter),
		zap.Int("key_results", len(valid)),
	)
	return obj, nil
}

// UpdateObjective rewrites title/description/target date and logs the edit.
func (s *OKRService) UpdateObjective(ctx context.Context, id uuid.UUID, req models.UpdateObjectiveRequest, now time.Time) error {
	obj, err := s.store.ObjectiveWithKeyResults(ctx, id)
	if err != nil {
		return err
	}

	title := obj.Title
	fields := map[string]any{"updated_at": now}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return ErrTitleRequired
		}
		fields["title"] = t
		title = t
	}
	if req.Description != nil {
		fields["description"] = trimmedOrNil(req.Description)
	}
	if req.TargetDate != nil {
		fields["target_date"] = *req.TargetDate
	}

	author := authorOr(req.Author)
	return s.store.Transact(ctx, []store.Op{
		store.Update(&models.Objective{ID: id}, fields),
		s.activityOp(models.ActivityUpdated, "Updated OKR: "+title, author, now),
	})
}

// DeleteObjective removes the objective and, explicitly, every child key
// result — the store has no cascade, and orphaned key results must not
// survive their objective.
func (s *OKRService) DeleteObjective(ctx context.Context, id uuid.UUID, author string, now time.Time) error {
	obj, err := s.store.ObjectiveWithKeyResults(ctx, id)
	if err != nil {
		return err
	}

	ops := []store.Op{store.Delete(&models.Objective{ID: id})}
	for _, kr := range obj.KeyResults {
		ops = append(ops, store.Delete(&models.KeyResult{ID: kr.ID}))
	}
	ops = append(ops, s.activityOp(models.ActivityUpdated, "Deleted OKR: "+obj.Title, authorOr(author), now))

	if err := s.store.Transact(ctx, ops); err != nil {
		return err
	}
	s.log.Info("objective deleted",
		zap.String("objective_id", id.String()),
		zap.Int("key_results", len(obj.KeyResults)),
	)
	return nil
}

// CompleteObjective is the terminal transition: every key result is forced
// to its target and the objective becomes completed, all in one write-set.
func (s *OKRService) CompleteObjective(ctx context.Context, id uuid.UUID, author string, now time.Time) error {
	obj, err := s.store.ObjectiveWithKeyResults(ctx, id)
	if err != nil {
		return err
	}

	ops := []store.Op{
		store.Update(&models.Objective{ID: id}, map[string]any{
			"status":       models.StatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		}),
	}
	for _, kr := range obj.KeyResults {
		ops = append(ops, store.Update(&models.KeyResult{ID: kr.ID}, map[string]any{
			"current":    kr.Target,
			"updated_at": now,
		}))
	}
	ops = append(ops, s.activityOp(models.ActivityCompleted, "Completed OKR: "+obj.Title, authorOr(author), now))

	return s.store.Transact(ctx, ops)
}

// AddKeyResult attaches a new key result to an existing objective. The
// parent's updatedAt is touched in the same transaction.
func (s *OKRService) AddKeyResult(ctx context.Context, objectiveID uuid.UUID, in models.KeyResultInput, author string, now time.Time) (*models.KeyResult, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if in.Target < 0 {
		return nil, ErrNegativeValue
	}
	if _, err := s.store.ObjectiveWithKeyResults(ctx, objectiveID); err != nil {
		return nil, err
	}

	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		owner = "Unassigned"
	}
	kr := &models.KeyResult{
		ID:          s.store.NewID(),
		ObjectiveID: objectiveID,
		Description: strings.TrimSpace(in.Description),
		Target:      in.Target,
		Current:     0,
		Unit:        in.Unit,
		Status:      string(progress.HealthOnTrack),
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.store.Transact(ctx, []store.Op{
		store.Insert(kr),
		store.Update(&models.Objective{ID: objectiveID}, map[string]any{"updated_at": now}),
		s.activityOp(models.ActivityUpdated, "Added Key Result: "+kr.Description, authorOr(author), now),
	})
	if err != nil {
		return nil, err
	}
	return kr, nil
}

// UpdateKeyResultProgress rewrites the current value and, in the same
// transaction, the parent objective's health evaluated against the new
// overall progress. Every progress entry point routes through here so the
// stored health never depends on which view the edit came from.
func (s *OKRService) UpdateKeyResultProgress(ctx context.Context, krID uuid.UUID, current float64, author string, now time.Time) error {
	if current < 0 {
		return ErrNegativeValue
	}

	kr, err := s.store.KeyResult(ctx, krID)
	if err != nil {
		return err
	}
	obj, err := s.store.ObjectiveWithKeyResults(ctx, kr.ObjectiveID)
	if err != nil {
		return err
	}

	// Recompute overall progress with the new value substituted in.
	keyResults := make([]models.KeyResult, len(obj.KeyResults))
	copy(keyResults, obj.KeyResults)
	for i := range keyResults {
		if keyResults[i].ID == krID {
			keyResults[i].Current = current
		}
	}
	pct := progress.ObjectiveProgress(keyResults)
	health := progress.EvaluateHealth(obj.CreatedAt, obj.TargetDate, pct, now)

	description := fmt.Sprintf("Updated progress on %q to %s/%s %s",
		kr.Description, formatAmount(current), formatAmount(kr.Target), kr.Unit)

	err = s.store.Transact(ctx, []store.Op{
		store.Update(&models.KeyResult{ID: krID}, map[string]any{
			"current":    current,
			"updated_at": now,
		}),
		store.Update(&models.Objective{ID: obj.ID}, map[string]any{
			"health":     string(health),
			"updated_at": now,
		}),
		s.activityOp(models.ActivityUpdated, description, authorOr(author), now),
	})
	if err != nil {
		return err
	}
	s.log.Info("key result progress updated",
		zap.String("key_result_id", krID.String()),
		zap.Int("objective_progress", pct),
		zap.String("health", string(health)),
	)
	return nil
}

// UpdateKeyResult edits descriptive fields. Progress and health are not
// touched here; that is UpdateKeyResultProgress's job.
func (s *OKRService) UpdateKeyResult(ctx context.Context, krID uuid.UUID, req models.UpdateKeyResultRequest, now time.Time) error {
	kr, err := s.store.KeyResult(ctx, krID)
	if err != nil {
		return err
	}

	description := kr.Description
	fields := map[string]any{"updated_at": now}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			return ErrDescriptionRequired
		}
		fields["description"] = d
		description = d
	}
	if req.Target != nil {
		if *req.Target < 0 {
			return ErrNegativeValue
		}
		fields["target"] = *req.Target
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.Owner != nil {
		fields["owner"] = *req.Owner
	}

	return s.store.Transact(ctx, []store.Op{
		store.Update(&models.KeyResult{ID: krID}, fields),
		s.activityOp(models.ActivityUpdated, "Updated Key Result: "+description, authorOr(req.Author), now),
	})
}

// DeleteKeyResult removes the key result and touches the parent objective's
// updatedAt in the same transaction.
func (s *OKRService) DeleteKeyResult(ctx context.Context, krID uuid.UUID, author string, now time.Time) error {
	kr, err := s.store.KeyResult(ctx, krID)
	if err != nil {
		return err
	}

	return s.store.Transact(ctx, []store.Op{
		store.Delete(&models.KeyResult{ID: krID}),
		store.Update(&models.Objective{ID: kr.ObjectiveID}, map[string]any{"updated_at": now}),
		s.activityOp(models.ActivityUpdated, "Deleted Key Result: "+kr.Description, authorOr(author), now),
	})
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

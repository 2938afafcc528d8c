package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
	"github.com/mfalcone/okrdeck-api/internal/store"
)

// AddMember inserts a crew member and the creation activity atomically.
func (s *OKRService) AddMember(ctx context.Context, req models.CreateMemberRequest, now time.Time) (*models.Member, error) {
	name := strings.TrimSpace(req.Name)
	crewRole := strings.TrimSpace(req.CrewRole)
	if name == "" || crewRole == "" {
		return nil, ErrNameRoleRequired
	}

	// Easter egg: Mike is always the Janitor.
	if strings.EqualFold(name, "mike") {
		crewRole = "Janitor"
	}

	member := &models.Member{
		ID:       s.store.NewID(),
		Name:     name,
		CrewRole: crewRole,
		Role:     "member",
		IsActive: true,
		JoinedAt: now,
	}

	err := s.store.Transact(ctx, []store.Op{
		store.Insert(member),
		s.activityOp(models.ActivityCreated,
			"Added team member: "+name+" ("+crewRole+")", authorOr(req.Author), now),
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ToggleMemberActive flips a member's active flag and logs which way it went.
func (s *OKRService) ToggleMemberActive(ctx context.Context, id uuid.UUID, author string, now time.Time) (*models.Member, error) {
	member, err := s.store.Member(ctx, id)
	if err != nil {
		return nil, err
	}

	action := "Activated"
	if member.IsActive {
		action = "Deactivated"
	}
	member.IsActive = !member.IsActive

	err = s.store.Transact(ctx, []store.Op{
		store.Update(&models.Member{ID: id}, map[string]any{
			"is_active":  member.IsActive,
			"updated_at": now,
		}),
		s.activityOp(models.ActivityUpdated,
			action+" team member: "+member.Name+" ("+member.CrewRole+")", authorOr(author), now),
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

// DB is the GORM-backed store. PostgreSQL when the URL says so, SQLite
// otherwise.
type DB struct {
	db  *gorm.DB
	log *zap.Logger
}

func Open(databaseURL string, log *zap.Logger) (*DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return &DB{db: db, log: log}, nil
}

func (s *DB) Migrate() error {
	return s.db.AutoMigrate(
		&models.Objective{},
		&models.KeyResult{},
		&models.Member{},
		&models.Activity{},
		&models.Comment{},
		&models.Reflection{},
	)
}

func (s *DB) NewID() uuid.UUID { return uuid.New() }

// Transact applies the ops in order inside one database transaction. Any
// failure rolls the whole write-set back. Each op addresses exactly one
// record: associated rows ride their own ops, never GORM's auto-save.
func (s *DB) Transact(ctx context.Context, ops []Op) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			switch op.Kind {
			case OpInsert:
				if err := tx.Omit(clause.Associations).Create(op.Record).Error; err != nil {
					return err
				}
			case OpUpdate:
				if err := tx.Model(op.Record).Updates(op.Fields).Error; err != nil {
					return err
				}
			case OpDelete:
				if err := tx.Delete(op.Record).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("transaction rejected", zap.Int("ops", len(ops)), zap.Error(err))
	}
	return err
}

func (s *DB) ObjectiveWithKeyResults(ctx context.Context, id uuid.UUID) (*models.Objective, error) {
	var o models.Objective
	err := s.db.WithContext(ctx).
		Preload("KeyResults").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Objectives returns objectives with their key results preloaded, newest
// first. Empty quarter or statuses mean "no filter".
func (s *DB) Objectives(ctx context.Context, quarter string, statuses []string) ([]models.Objective, error) {
	q := s.db.WithContext(ctx).Preload("KeyResults").Order("created_at DESC")
	if quarter != "" {
		q = q.Where("quarter = ?", quarter)
	}
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var objectives []models.Objective
	if err := q.Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (s *DB) KeyResult(ctx context.Context, id uuid.UUID) (*models.KeyResult, error) {
	var kr models.KeyResult
	if err := s.db.WithContext(ctx).First(&kr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kr, nil
}

func (s *DB) KeyResults(ctx context.Context) ([]models.KeyResult, error) {
	var keyResults []models.KeyResult
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&keyResults).Error
	if err != nil {
		return nil, err
	}
	return keyResults, nil
}

func (s *DB) Member(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	var m models.Member
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DB) Members(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := s.db.WithContext(ctx).Order("joined_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *DB) Activity(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	var a models.Activity
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Activities returns the feed with notes preloaded, most recent first.
func (s *DB) Activities(ctx context.Context, limit int) ([]models.Activity, error) {
	q := s.db.WithContext(ctx).Preload("Notes").Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var activities []models.Activity
	if err := q.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *DB) Reflection(ctx context.Context, id uuid.UUID) (*models.Reflection, error) {
	var r models.Reflection
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Reflections returns planning reflections, pinned first, then most voted.
func (s *DB) Reflections(ctx context.Context, quarter string) ([]models.Reflection, error) {
	q := s.db.WithContext(ctx).Order("is_pinned DESC, votes DESC, created_at DESC")
	if quarter != "" {
		q = q.Where("quarter = ?", quarter)
	}
	var reflections []models.Reflection
	if err := q.Find(&reflections).Error; err != nil {
		return nil, err
	}
	return reflections, nil
}

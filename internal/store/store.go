// Package store is the gateway between the sync rules and the database: a
// small transactional write API plus the typed reads the views need. A user
// action arrives as an ordered list of Ops and is applied all-or-nothing, so
// readers never observe a half-applied write-set.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

type OpKind int

const (
	OpInsert OpKind = iota
	OpUpdate
	OpDelete
)

// Op is one insert, update, or delete addressed by a model record. Updates
// carry a column map so untouched fields keep their stored values.
type Op struct {
	Kind   OpKind
	Record any            // model pointer; its primary key addresses updates and deletes
	Fields map[string]any // column updates, OpUpdate only
}

func Insert(record any) Op { return Op{Kind: OpInsert, Record: record} }

func Update(record any, fields map[string]any) Op {
	return Op{Kind: OpUpdate, Record: record, Fields: fields}
}

func Delete(record any) Op { return Op{Kind: OpDelete, Record: record} }

// Store is the surface the aggregation rules in internal/services consume.
// Reads return the denormalized graphs a write-set computation needs;
// Transact applies a write-set atomically. NewID mints identities client
// side so new entities can be addressed inside the same transaction.
type Store interface {
	NewID() uuid.UUID
	Transact(ctx context.Context, ops []Op) error

	ObjectiveWithKeyResults(ctx context.Context, id uuid.UUID) (*models.Objective, error)
	KeyResult(ctx context.Context, id uuid.UUID) (*models.KeyResult, error)
	Member(ctx context.Context, id uuid.UUID) (*models.Member, error)
	Activity(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	Reflection(ctx context.Context, id uuid.UUID) (*models.Reflection, error)
}

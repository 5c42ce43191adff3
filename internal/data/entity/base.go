package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle is the soft-delete state of a row: Active, or Deleted at a point in time.
// Repositories build it from the deleted_at column; nothing else reads that column.
type Lifecycle struct {
	deletedAt time.Time
	deleted   bool
}

func Active() Lifecycle {
	return Lifecycle{}
}

func DeletedAt(at time.Time) Lifecycle {
	return Lifecycle{deletedAt: at, deleted: true}
}

// LifecycleFrom maps a scanned nullable deleted_at column.
func LifecycleFrom(deletedAt *time.Time) Lifecycle {
	if deletedAt == nil {
		return Active()
	}
	return DeletedAt(*deletedAt)
}

func (l Lifecycle) IsDeleted() bool {
	return l.deleted
}

func (l Lifecycle) DeletedAt() (time.Time, bool) {
	return l.deletedAt, l.deleted
}

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Lifecycle Lifecycle `db:"-"`
}

type BaseNoDelete struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

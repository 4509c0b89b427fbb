// Package model contains the GORM persistence models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// baseColumns carries the columns every table shares: a database-generated
// UUID primary key and the audit timestamps. GORM promotes the fields of an
// anonymous embedded struct into the enclosing model.
type baseColumns struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

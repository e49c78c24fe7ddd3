package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

var (
	ErrReportNotFound       = errors.New("report not found")
	ErrReasonRequired       = errors.New("report reason is required")
	ErrReportTargetRequired = errors.New("report must reference an item or name one")
	ErrReportResolved       = errors.New("report already resolved")
	ErrTargetNotFound       = errors.New("target entity not found")
)

// ErrorReport is a user-filed correction request against the knowledge
// base. Reports reference a known item or name an unknown one free-form.
type ErrorReport struct {
	ID         uuid.UUID         `bun:",pk,type:uuid"       json:"id"`
	ItemID     uuid.UUID         `bun:",nullzero,type:uuid" json:"itemId,omitempty"`
	Name       string            `bun:",nullzero"           json:"name,omitempty"`
	Company    string            `bun:",nullzero"           json:"company,omitempty"`
	Reason     string            `bun:",notnull"            json:"reason"`
	SourceURL  string            `bun:",nullzero"           json:"sourceUrl,omitempty"`
	ReporterID uuid.UUID         `bun:",notnull,type:uuid"  json:"reporterId"`
	Status     enum.ReportStatus `bun:",notnull"            json:"status"`
	ResolvedAt time.Time         `bun:",nullzero"           json:"resolvedAt,omitempty"`
	CreatedAt  time.Time         `bun:",notnull"            json:"createdAt"`
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

// EntityLookup checks that a referenced domain entity exists. Entity
// storage for companies, products, brands and stores lives outside the
// engine; a nil lookup skips existence checks.
type EntityLookup interface {
	Exists(ctx context.Context, targetType enum.TargetType, targetID uuid.UUID) (bool, error)
}

// Clock supplies creation timestamps. Defaults to time.Now.
type Clock func() time.Time

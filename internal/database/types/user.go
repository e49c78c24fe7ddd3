package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// RoleTrustedContributor is emitted to the auth layer when a user reaches
// TrustedContributorLevel. The engine records the role on the user row; it
// does not own what the role unlocks.
const (
	RoleMember             = "MEMBER"
	RoleTrustedContributor = "TRUSTED_CONTRIBUTOR"

	TrustedContributorLevel = 2
)

// User holds the engine-owned trust fields of a user record. Profile data
// beyond display names lives with the external user collaborator; the
// engine is the sole writer of score_total, reputation_level and role.
type User struct {
	ID              uuid.UUID `bun:",pk,type:uuid"           json:"id"`
	DisplayName     string    `bun:",notnull"                json:"displayName"`
	DisplayNameAr   string    `bun:",nullzero"               json:"displayNameAr,omitempty"`
	ScoreTotal      int64     `bun:",notnull,default:0"      json:"scoreTotal"`
	ReputationLevel int       `bun:",notnull,default:0"      json:"reputationLevel"`
	Role            string    `bun:",notnull,default:'MEMBER'" json:"role"`
	IsActive        bool      `bun:",notnull,default:true"   json:"isActive"`
	CreatedAt       time.Time `bun:",notnull"                json:"createdAt"`
}

// LeaderboardEntry is one row of the top-contributors view.
type LeaderboardEntry struct {
	UserID          uuid.UUID `json:"userId"`
	DisplayName     string    `json:"displayName"`
	DisplayNameAr   string    `json:"displayNameAr,omitempty"`
	ScoreTotal      int64     `json:"scoreTotal"`
	ReputationLevel int       `json:"reputationLevel"`
	LevelName       string    `json:"levelName"`
}

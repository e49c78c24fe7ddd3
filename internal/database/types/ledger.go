package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

var (
	ErrInvalidPoints = errors.New("points must be a non-zero integer")
	ErrUnknownReason = errors.New("unknown scoring reason")
)

// ScoreLedgerEntry is one immutable scoring event. Entries are only ever
// inserted; the running sum of a user's entries equals the user's
// score_total at all times.
type ScoreLedgerEntry struct {
	ID          uuid.UUID       `bun:",pk,type:uuid"      json:"id"`
	UserID      uuid.UUID       `bun:",notnull,type:uuid" json:"userId"`
	Points      int             `bun:",notnull"           json:"points"`
	Reason      enum.ReasonCode `bun:",notnull"           json:"reason"`
	ReferenceID uuid.UUID       `bun:",nullzero,type:uuid" json:"referenceId,omitempty"`
	CreatedAt   time.Time       `bun:",notnull"           json:"createdAt"`
}

// PointPolicy maps each scoring reason to its point value. Values are
// configuration, not business logic; defaults match the production policy.
type PointPolicy map[enum.ReasonCode]int

// DefaultPointPolicy returns the standard point values.
func DefaultPointPolicy() PointPolicy {
	return PointPolicy{
		enum.ReasonCodeSubmissionCreated:      5,
		enum.ReasonCodeSubmissionApproved:     25,
		enum.ReasonCodeSubmissionRejectedSpam: -5,
		enum.ReasonCodeEvidenceAccepted:       10,
		enum.ReasonCodeStoreConfirmation:      2,
		enum.ReasonCodePriceUpdate:            2,
		enum.ReasonCodeErrorReportAccepted:    8,
		enum.ReasonCodeDuplicateMerged:        1,
	}
}

// Points resolves the point value for a reason.
func (p PointPolicy) Points(reason enum.ReasonCode) (int, error) {
	points, ok := p[reason]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownReason, reason)
	}
	if points == 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPoints, reason)
	}
	return points, nil
}

// Validate checks that every reason in the closed set has a non-zero value.
func (p PointPolicy) Validate() error {
	for _, reason := range enum.ReasonCodeValues() {
		if _, err := p.Points(reason); err != nil {
			return err
		}
	}
	return nil
}

// ReputationTier is one level of the reputation ladder.
type ReputationTier struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	NameAr    string `json:"nameAr"`
	MinPoints int64  `json:"minPoints"`
}

// ReputationTiers is the ordered tier table. Tiers must start at level 0
// and carry strictly increasing minimum points.
type ReputationTiers []ReputationTier

// DefaultReputationTiers returns the standard tier table.
func DefaultReputationTiers() ReputationTiers {
	return ReputationTiers{
		{Level: 0, Name: "New User", NameAr: "مستخدم جديد", MinPoints: 0},
		{Level: 1, Name: "Contributor", NameAr: "مساهم", MinPoints: 50},
		{Level: 2, Name: "Trusted Contributor", NameAr: "مساهم موثوق", MinPoints: 200},
		{Level: 3, Name: "Power Contributor", NameAr: "مساهم متميز", MinPoints: 500},
	}
}

// Validate checks the tier table invariants.
func (t ReputationTiers) Validate() error {
	if len(t) == 0 {
		return errors.New("tier table is empty")
	}
	if t[0].Level != 0 || t[0].MinPoints != 0 {
		return errors.New("tier table must start at level 0 with min points 0")
	}
	for i := 1; i < len(t); i++ {
		if t[i].Level != t[i-1].Level+1 {
			return fmt.Errorf("tier levels must be consecutive, got %d after %d", t[i].Level, t[i-1].Level)
		}
		if t[i].MinPoints <= t[i-1].MinPoints {
			return fmt.Errorf("tier min points must be strictly increasing, got %d after %d",
				t[i].MinPoints, t[i-1].MinPoints)
		}
	}
	return nil
}

// Classify maps a cumulative score to the highest tier whose threshold the
// score meets. Scores below zero classify as level 0.
func (t ReputationTiers) Classify(score int64) int {
	level := 0
	for _, tier := range t {
		if score >= tier.MinPoints {
			level = tier.Level
		}
	}
	return level
}

// Info returns the tier for a level, if it exists.
func (t ReputationTiers) Info(level int) (ReputationTier, bool) {
	for _, tier := range t {
		if tier.Level == level {
			return tier, true
		}
	}
	return ReputationTier{}, false
}

package types

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

var (
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrEvidenceRequired        = errors.New("at least one evidence source is required for claims")
	ErrVotingClosed            = errors.New("cannot vote on closed submissions")
	ErrSubmissionClosed        = errors.New("submission already decided")
	ErrInvalidTransition       = errors.New("invalid submission status transition")
	ErrEvidenceAlreadyAccepted = errors.New("evidence already accepted for this submission")
)

// Submission is a community-proposed creation or edit of a domain entity.
// Rows are never deleted; moderation decisions and their reasons stay on
// the row as an audit trail.
type Submission struct {
	ID          uuid.UUID       `bun:",pk,type:uuid"       json:"id"`
	SubmitterID uuid.UUID       `bun:",notnull,type:uuid"  json:"submitterId"`
	TargetType  enum.TargetType `bun:",notnull"            json:"targetType"`
	// TargetID is zero when the submission proposes a new entity.
	TargetID             uuid.UUID             `bun:",nullzero,type:uuid" json:"targetId,omitempty"`
	ProposedData         json.RawMessage       `bun:",notnull,type:jsonb" json:"proposedData"`
	EvidenceRefs         []string              `bun:",type:jsonb"         json:"evidenceRefs"`
	EvidenceAccepted     bool                  `bun:",notnull,default:false" json:"evidenceAccepted"`
	ProposedAlternatives json.RawMessage       `bun:",nullzero,type:jsonb" json:"proposedAlternatives,omitempty"`
	ProposedStores       json.RawMessage       `bun:",nullzero,type:jsonb" json:"proposedStores,omitempty"`
	Status               enum.SubmissionStatus `bun:",notnull"            json:"status"`
	ModeratorNotes       string                `bun:",nullzero"           json:"moderatorNotes,omitempty"`
	DecisionReason       string                `bun:",nullzero"           json:"decisionReason,omitempty"`
	// DuplicateOf links a merged submission to the surviving one.
	DuplicateOf uuid.UUID `bun:",nullzero,type:uuid" json:"duplicateOf,omitempty"`
	CreatedAt   time.Time `bun:",notnull"            json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull"            json:"updatedAt"`
}

// IsTerminal reports whether no further votes or decisions are accepted.
func (s *Submission) IsTerminal() bool {
	return IsTerminalStatus(s.Status)
}

// submissionTransitions is the full transition table. Any edge not listed
// here is rejected before side effects are applied.
var submissionTransitions = map[enum.SubmissionStatus][]enum.SubmissionStatus{
	enum.SubmissionStatusPending: {
		enum.SubmissionStatusNeedsInfo,
		enum.SubmissionStatusApproved,
		enum.SubmissionStatusRejected,
		enum.SubmissionStatusMerged,
	},
	enum.SubmissionStatusNeedsInfo: {
		enum.SubmissionStatusPending,
		enum.SubmissionStatusApproved,
		enum.SubmissionStatusRejected,
		enum.SubmissionStatusMerged,
	},
}

// CanTransition reports whether the status change is in the declared table.
func CanTransition(from, to enum.SubmissionStatus) bool {
	for _, allowed := range submissionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a status has no outgoing transitions.
func IsTerminalStatus(status enum.SubmissionStatus) bool {
	return len(submissionTransitions[status]) == 0
}

// HasClaims reports whether a proposed payload asserts factual claims,
// which require evidence sources.
func HasClaims(proposedData json.RawMessage) bool {
	if len(proposedData) == 0 {
		return false
	}
	node, err := sonic.Get(proposedData, "claims")
	if err != nil {
		return false
	}
	return node.Exists()
}

// IsSpamReason reports whether a rejection reason marks the submission as
// spam, which carries a score penalty. Matching follows the moderation
// convention of including "spam" in the decision reason.
func IsSpamReason(decisionReason string) bool {
	return strings.Contains(strings.ToLower(decisionReason), "spam")
}

// Vote is one voter's advisory stance on a submission. A later vote from
// the same voter replaces the earlier one; votes never change submission
// status themselves.
type Vote struct {
	SubmissionID uuid.UUID     `bun:",pk,type:uuid" json:"submissionId"`
	VoterID      uuid.UUID     `bun:",pk,type:uuid" json:"voterId"`
	VoteType     enum.VoteType `bun:",notnull"      json:"voteType"`
	Note         string        `bun:",nullzero"     json:"note,omitempty"`
	CreatedAt    time.Time     `bun:",notnull"      json:"createdAt"`
	UpdatedAt    time.Time     `bun:",notnull"      json:"updatedAt"`
}

// VoteCounts summarizes votes on one submission per vote type.
type VoteCounts struct {
	Support       int `json:"support"`
	NeedsEvidence int `json:"needsEvidence"`
	Disagree      int `json:"disagree"`
}

// Add counts one vote.
func (c *VoteCounts) Add(voteType enum.VoteType) {
	switch voteType {
	case enum.VoteTypeSupport:
		c.Support++
	case enum.VoteTypeNeedsEvidence:
		c.NeedsEvidence++
	case enum.VoteTypeDisagree:
		c.Disagree++
	}
}

// Total returns the number of counted votes.
func (c *VoteCounts) Total() int {
	return c.Support + c.NeedsEvidence + c.Disagree
}

// SubmissionFilter narrows submission listings.
type SubmissionFilter struct {
	Status      *enum.SubmissionStatus
	TargetType  *enum.TargetType
	SubmitterID uuid.UUID
	Limit       int
	Offset      int
}

// SubmissionWithVotes pairs a submission with its vote summary for listings.
type SubmissionWithVotes struct {
	*Submission

	VoteCounts VoteCounts `json:"voteCounts"`
}

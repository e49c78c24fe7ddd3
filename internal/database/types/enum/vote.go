package enum

// VoteType represents a community voter's stance on a submission.
//
//go:generate go tool enumer -type=VoteType -trimprefix=VoteType
type VoteType int

const (
	// VoteTypeSupport backs the proposed change.
	VoteTypeSupport VoteType = iota
	// VoteTypeNeedsEvidence asks the submitter for better sources.
	VoteTypeNeedsEvidence
	// VoteTypeDisagree opposes the proposed change.
	VoteTypeDisagree
)

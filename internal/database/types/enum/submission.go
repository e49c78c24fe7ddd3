package enum

// SubmissionStatus represents the lifecycle state of a submission.
//
//go:generate go tool enumer -type=SubmissionStatus -trimprefix=SubmissionStatus
type SubmissionStatus int

const (
	// SubmissionStatusPending indicates a submission awaiting a moderator decision.
	SubmissionStatusPending SubmissionStatus = iota
	// SubmissionStatusNeedsInfo indicates a moderator requested more information.
	SubmissionStatusNeedsInfo
	// SubmissionStatusApproved indicates the proposed change was accepted.
	SubmissionStatusApproved
	// SubmissionStatusRejected indicates the proposed change was declined.
	SubmissionStatusRejected
	// SubmissionStatusMerged indicates the submission was folded into another one.
	SubmissionStatusMerged
)

// TargetType represents the kind of entity a submission or report targets.
//
//go:generate go tool enumer -type=TargetType -trimprefix=TargetType
type TargetType int

const (
	TargetTypeCompany TargetType = iota
	TargetTypeProduct
	TargetTypeBrand
	TargetTypeStore
)

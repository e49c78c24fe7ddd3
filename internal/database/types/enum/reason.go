package enum

// ReasonCode identifies the scoring event behind a ledger entry.
//
//go:generate go tool enumer -type=ReasonCode -trimprefix=ReasonCode -transform=snake
type ReasonCode int

const (
	// ReasonCodeSubmissionCreated is awarded when a user proposes a change.
	ReasonCodeSubmissionCreated ReasonCode = iota
	// ReasonCodeSubmissionApproved is awarded when a moderator approves a submission.
	ReasonCodeSubmissionApproved
	// ReasonCodeSubmissionRejectedSpam is deducted when a submission is rejected as spam.
	ReasonCodeSubmissionRejectedSpam
	// ReasonCodeEvidenceAccepted is awarded when submitted evidence is verified.
	ReasonCodeEvidenceAccepted
	// ReasonCodeStoreConfirmation is awarded for confirming item availability at a store.
	ReasonCodeStoreConfirmation
	// ReasonCodePriceUpdate is awarded for reporting a price at a store.
	ReasonCodePriceUpdate
	// ReasonCodeErrorReportAccepted is awarded when an error report is accepted.
	ReasonCodeErrorReportAccepted
	// ReasonCodeDuplicateMerged is awarded when a duplicate is merged into a submission.
	ReasonCodeDuplicateMerged
)

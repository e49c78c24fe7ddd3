package enum

// ReportStatus represents the resolution state of an error report.
//
//go:generate go tool enumer -type=ReportStatus -trimprefix=ReportStatus
type ReportStatus int

const (
	ReportStatusPending ReportStatus = iota
	ReportStatusAccepted
	ReportStatusDismissed
)

package enum

// ConfirmationSortBy represents different ways to rank store availability views.
//
//go:generate go tool enumer -type=ConfirmationSortBy -trimprefix=ConfirmationSortBy
type ConfirmationSortBy int

const (
	// ConfirmationSortByRecent orders stores by their latest confirmation, newest first.
	ConfirmationSortByRecent ConfirmationSortBy = iota
	// ConfirmationSortByPrice orders stores by their lowest reported price, ascending.
	ConfirmationSortByPrice
	// ConfirmationSortByConfirmations orders stores by trust-weighted confirmation count.
	ConfirmationSortByConfirmations
)

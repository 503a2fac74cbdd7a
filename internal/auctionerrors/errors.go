package auctionerrors

import "errors"

// Ledger-level errors
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotOwned          = errors.New("token not owned by account")
)

// Auction business logic errors
var (
	ErrNotFound          = errors.New("auction not found")
	ErrNotOwner          = errors.New("seller does not own item")
	ErrItemAlreadyListed = errors.New("item already listed in an active auction")
	ErrInvalidSchedule   = errors.New("start date must not be in the past")
	ErrSelfBid           = errors.New("creator cannot bid on own auction")
	ErrBelowMinimum      = errors.New("bid below minimum amount")
	ErrOutbid            = errors.New("bid does not outrank current winning bid")
	ErrAuctionClosed     = errors.New("auction already finished")
)

// Boundary configuration errors
var (
	ErrWithdrawalTargetUnset = errors.New("withdrawal target address not configured")
)

// ErrSettlementInconsistency marks a settlement where the payment leg applied
// but the item leg could not. It must never be silently retried.
var ErrSettlementInconsistency = errors.New("settlement inconsistency: payment applied without item delivery")

package models

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
)

// Item identifies a non-fungible asset put up for sale: the ERC-721
// contract plus the token id within it. Items compare by value.
type Item struct {
	ERC721  string `json:"erc721"`
	TokenID uint64 `json:"token_id"`
}

// Bid is an accepted offer on an auction. Amounts are denominated in the
// auction's settlement ERC-20 and are plain unsigned quantities.
type Bid struct {
	AuctionID uint64    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    uint64    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBid validates and constructs a Bid. A zero amount is never a valid bid.
func NewBid(auctionID uint64, bidder string, amount uint64, timestamp time.Time) (Bid, error) {
	if amount == 0 {
		return Bid{}, fmt.Errorf("bid amount must be greater than zero: %w", auctionerrors.ErrInvalidAmount)
	}
	return Bid{
		AuctionID: auctionID,
		Bidder:    bidder,
		Amount:    amount,
		Timestamp: timestamp,
	}, nil
}

// Outranks reports whether b beats other: a strictly higher amount wins,
// and on equal amounts the earlier bid wins.
func (b Bid) Outranks(other Bid) bool {
	if b.Amount != other.Amount {
		return b.Amount > other.Amount
	}
	return b.Timestamp.Before(other.Timestamp)
}

// Status is the auction lifecycle state.
type Status int

const (
	StatusCreated Status = iota
	StatusStarted
	StatusFinished
)

// String returns the lifecycle state name.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "CREATED"
	case StatusStarted:
		return "STARTED"
	case StatusFinished:
		return "FINISHED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalJSON encodes the state by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// Auction is the aggregate root for one listing. Bids is append-only and
// kept in rank order: the last element is always the current winning bid.
type Auction struct {
	ID           uint64    `json:"id"`
	Creator      string    `json:"creator"`
	Item         Item      `json:"item"`
	ERC20        string    `json:"erc20"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	MinBidAmount uint64    `json:"min_bid_amount"`
	State        Status    `json:"state"`
	Bids         []Bid     `json:"bids"`
}

// NewAuction constructs an Auction in state CREATED with no bids.
// Ids are assigned by the registry that owns the auction.
func NewAuction(id uint64, creator string, item Item, erc20, title, description string,
	startDate, endDate time.Time, minBidAmount uint64) *Auction {
	return &Auction{
		ID:           id,
		Creator:      creator,
		Item:         item,
		ERC20:        erc20,
		Title:        title,
		Description:  description,
		StartDate:    startDate,
		EndDate:      endDate,
		MinBidAmount: minBidAmount,
		State:        StatusCreated,
	}
}

// WinningBid returns the current winning bid, which is always the tail of
// the bid sequence. ok is false when no bid has been accepted yet.
func (a *Auction) WinningBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	return a.Bids[len(a.Bids)-1], true
}

// AcceptBid appends an already-admitted bid and advances CREATED to STARTED
// on the first one. Admission checks belong to the auction service.
func (a *Auction) AcceptBid(bid Bid) {
	a.Bids = append(a.Bids, bid)
	if a.State == StatusCreated {
		a.State = StatusStarted
	}
}

// Finish moves the auction to its terminal state.
func (a *Auction) Finish() {
	a.State = StatusFinished
}

// Snapshot returns a detached copy of the auction safe to hand to callers.
func (a *Auction) Snapshot() Auction {
	copied := *a
	copied.Bids = append([]Bid(nil), a.Bids...)
	return copied
}

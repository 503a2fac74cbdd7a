package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/models"
	"auction-house/utils"
)

// AuctionService owns the auction registry and drives the listing lifecycle:
// creation, bid admission and settlement. All fund and item movements go
// through the injected ledger.
type AuctionService struct {
	mu               sync.RWMutex
	ledger           ledger.AssetLedger
	auctions         map[uint64]*models.Auction
	nextID           uint64
	withdrawalTarget string
}

// NewAuctionService creates an empty registry backed by the given ledger.
func NewAuctionService(assetLedger ledger.AssetLedger) *AuctionService {
	return &AuctionService{
		ledger:   assetLedger,
		auctions: make(map[uint64]*models.Auction),
		nextID:   1,
	}
}

// WithdrawalReceipt describes the item exit performed when the winner asks
// to withdraw at settlement time. The boundary turns it into a voucher.
type WithdrawalReceipt struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ERC721  string `json:"erc721"`
	TokenID uint64 `json:"token_id"`
}

// EndResult is the typed outcome of EndAuction. WinningBid is nil when the
// auction closed unsold; Withdrawal is nil unless the winner withdrew.
type EndResult struct {
	Auction    models.Auction
	WinningBid *models.Bid
	Withdrawal *WithdrawalReceipt
}

// SetWithdrawalTarget configures the boundary's own on-chain address, needed
// before any withdrawal can be honored. Set once by the address relay.
func (s *AuctionService) SetWithdrawalTarget(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withdrawalTarget = address
}

// WithdrawalTarget returns the configured boundary address, empty if unset.
func (s *AuctionService) WithdrawalTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.withdrawalTarget
}

// CreateAuction validates and registers a new listing for an item the
// creator owns. The checks run in order and the first failure wins.
func (s *AuctionService) CreateAuction(creator string, item models.Item, erc20, title, description string,
	minBidAmount uint64, startDate, endDate, currentDate time.Time) (models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if startDate.Before(currentDate) {
		return models.Auction{}, fmt.Errorf("service: start date %s is before %s: %w",
			startDate.Format(time.RFC3339), currentDate.Format(time.RFC3339), auctionerrors.ErrInvalidSchedule)
	}
	if !s.ledger.OwnsERC721(creator, item.ERC721, item.TokenID) {
		return models.Auction{}, fmt.Errorf("service: %s must own %s id %d to auction it: %w",
			creator, item.ERC721, item.TokenID, auctionerrors.ErrNotOwner)
	}
	if !s.itemAuctionable(item) {
		return models.Auction{}, fmt.Errorf("service: %s id %d: %w",
			item.ERC721, item.TokenID, auctionerrors.ErrItemAlreadyListed)
	}

	auction := models.NewAuction(s.nextID, creator, item, erc20, title, description, startDate, endDate, minBidAmount)
	s.nextID++
	s.auctions[auction.ID] = auction

	utils.Info("auction created", map[string]any{
		"auction_id": auction.ID,
		"creator":    creator,
		"erc721":     item.ERC721,
		"token_id":   item.TokenID,
	})
	return auction.Snapshot(), nil
}

// PlaceBid admits a bid when it passes, in order: auction exists, bidder is
// not the creator, amount meets the minimum, bidder is solvent in the
// settlement asset, the bid outranks the current winner, and the auction is
// still open. Funds are verified, not escrowed.
func (s *AuctionService) PlaceBid(bidder string, auctionID uint64, amount uint64, timestamp time.Time) (models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return models.Bid{}, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if bidder == auction.Creator {
		return models.Bid{}, fmt.Errorf("service: %s: %w", bidder, auctionerrors.ErrSelfBid)
	}

	bid, err := models.NewBid(auctionID, bidder, amount, timestamp)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	if amount < auction.MinBidAmount {
		return models.Bid{}, fmt.Errorf("service: bid %d below minimum %d: %w",
			amount, auction.MinBidAmount, auctionerrors.ErrBelowMinimum)
	}
	if s.ledger.ERC20BalanceOf(bidder, auction.ERC20) < amount {
		return models.Bid{}, fmt.Errorf("service: %s holds less than %d of %s: %w",
			bidder, amount, auction.ERC20, auctionerrors.ErrInsufficientFunds)
	}
	if winning, has := auction.WinningBid(); has && !bid.Outranks(winning) {
		return models.Bid{}, fmt.Errorf("service: bid %d does not beat winning bid %d: %w",
			amount, winning.Amount, auctionerrors.ErrOutbid)
	}
	if auction.State == models.StatusFinished {
		return models.Bid{}, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	auction.AcceptBid(bid)
	utils.Info("bid placed", map[string]any{
		"auction_id": auctionID,
		"bidder":     bidder,
		"amount":     amount,
	})
	return bid, nil
}

// EndAuction settles a listing. With no bids it just closes; with a winner it
// runs the payment and item legs as one atomic ledger trade. When the
// requester is the winner and asked to withdraw, the item leaves the ledger
// inside that same trade, so no interleaved wallet command can observe or move
// it in between. Any failure leaves both the ledger and the auction untouched.
func (s *AuctionService) EndAuction(auctionID uint64, requester string, currentTime time.Time, withdrawNow bool) (EndResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return EndResult{}, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if auction.State == models.StatusFinished {
		return EndResult{}, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}

	winning, hasWinner := auction.WinningBid()
	if !hasWinner {
		auction.Finish()
		utils.Info("auction ended unsold", map[string]any{"auction_id": auctionID})
		return EndResult{Auction: auction.Snapshot()}, nil
	}

	withdraw := withdrawNow && requester == winning.Bidder
	if withdraw && s.withdrawalTarget == "" {
		return EndResult{}, fmt.Errorf("service: cannot withdraw item for %s: %w",
			requester, auctionerrors.ErrWithdrawalTargetUnset)
	}

	if err := s.ledger.Trade(winning.Bidder, auction.Creator, auction.ERC20, winning.Amount,
		auction.Item.ERC721, auction.Item.TokenID, withdraw); err != nil {
		return EndResult{}, fmt.Errorf("service: settle auction id %d: %w", auctionID, err)
	}

	result := EndResult{WinningBid: &winning}
	if withdraw {
		result.Withdrawal = &WithdrawalReceipt{
			From:    s.withdrawalTarget,
			To:      winning.Bidder,
			ERC721:  auction.Item.ERC721,
			TokenID: auction.Item.TokenID,
		}
	}

	auction.Finish()
	result.Auction = auction.Snapshot()
	utils.Info("auction finished", map[string]any{
		"auction_id": auctionID,
		"winner":     winning.Bidder,
		"amount":     winning.Amount,
	})
	return result, nil
}

// GetAuction returns a snapshot of one auction.
func (s *AuctionService) GetAuction(auctionID uint64) (models.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return auction.Snapshot(), nil
}

// ListAuctions returns snapshots of every registered auction in id order.
func (s *AuctionService) ListAuctions() []models.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]models.Auction, 0, len(s.auctions))
	for id := uint64(1); id < s.nextID; id++ {
		if auction, ok := s.auctions[id]; ok {
			auctions = append(auctions, auction.Snapshot())
		}
	}
	return auctions
}

// ListBids returns the accepted bids of one auction in admission order.
func (s *AuctionService) ListBids(auctionID uint64) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("service: auction id %d: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return append([]models.Bid(nil), auction.Bids...), nil
}

// itemAuctionable reports whether no non-finished auction references the
// item. Every registered auction is consulted, not just the latest one.
func (s *AuctionService) itemAuctionable(item models.Item) bool {
	for _, auction := range s.auctions {
		if auction.State != models.StatusFinished && auction.Item == item {
			return false
		}
	}
	return true
}

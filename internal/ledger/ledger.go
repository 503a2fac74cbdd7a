package ledger

import (
	"fmt"
	"sort"
	"sync"

	"auction-house/internal/auctionerrors"
)

// AssetLedger defines the balance bookkeeping contract for the marketplace.
// Accounts and asset contracts are opaque address strings; amounts are
// unsigned quantities of the asset's smallest unit.
type AssetLedger interface {
	IncreaseEther(account string, amount uint64) error
	DecreaseEther(account string, amount uint64) error
	IncreaseERC20(account, erc20 string, amount uint64) error
	DecreaseERC20(account, erc20 string, amount uint64) error
	AddERC721(account, erc721 string, tokenID uint64) error
	RemoveERC721(account, erc721 string, tokenID uint64) error
	TransferEther(from, to string, amount uint64) error
	TransferERC20(from, to, erc20 string, amount uint64) error
	TransferERC721(from, to, erc721 string, tokenID uint64) error
	Trade(payer, payee, erc20 string, amount uint64, erc721 string, tokenID uint64, withdrawItem bool) error
	BalanceOf(account string) Balance
	ERC20BalanceOf(account, erc20 string) uint64
	OwnsERC721(account, erc721 string, tokenID uint64) bool
}

// Balance is a detached snapshot of one account's holdings.
type Balance struct {
	Ether  uint64              `json:"ether"`
	ERC20  map[string]uint64   `json:"erc20"`
	ERC721 map[string][]uint64 `json:"erc721"`
}

// accountBalance is the live record behind the snapshot. Fungible entries
// are created lazily at zero; token sets hold each id at most once.
type accountBalance struct {
	ether  uint64
	erc20  map[string]uint64
	erc721 map[string]map[uint64]struct{}
}

func newAccountBalance() *accountBalance {
	return &accountBalance{
		erc20:  make(map[string]uint64),
		erc721: make(map[string]map[uint64]struct{}),
	}
}

// MemoryLedger is a concurrency-safe in-memory implementation of AssetLedger.
// Durability is the hosting runtime's concern; state lives for the process.
type MemoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]*accountBalance
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		accounts: make(map[string]*accountBalance),
	}
}

// account returns the live record for an account, creating it on first use.
// Callers must hold the write lock.
func (l *MemoryLedger) account(account string) *accountBalance {
	b, ok := l.accounts[account]
	if !ok {
		b = newAccountBalance()
		l.accounts[account] = b
	}
	return b
}

// IncreaseEther credits the native balance of an account.
func (l *MemoryLedger) IncreaseEther(account string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.increaseEther(account, amount)
}

// DecreaseEther debits the native balance of an account.
func (l *MemoryLedger) DecreaseEther(account string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.decreaseEther(account, amount)
}

// IncreaseERC20 credits an account's balance of one fungible asset.
func (l *MemoryLedger) IncreaseERC20(account, erc20 string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.increaseERC20(account, erc20, amount)
}

// DecreaseERC20 debits an account's balance of one fungible asset.
func (l *MemoryLedger) DecreaseERC20(account, erc20 string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.decreaseERC20(account, erc20, amount)
}

// AddERC721 records ownership of a token by an account.
func (l *MemoryLedger) AddERC721(account, erc721 string, tokenID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.addERC721(account, erc721, tokenID)
	return nil
}

// RemoveERC721 drops a token from an account's ownership set.
func (l *MemoryLedger) RemoveERC721(account, erc721 string, tokenID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeERC721(account, erc721, tokenID)
}

// TransferEther moves native balance between accounts, all-or-nothing.
func (l *MemoryLedger) TransferEther(from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.decreaseEther(from, amount); err != nil {
		return fmt.Errorf("transfer ether from %s to %s: %w", from, to, err)
	}
	// cannot fail once the debit succeeded
	_ = l.increaseEther(to, amount)
	return nil
}

// TransferERC20 moves fungible balance between accounts, all-or-nothing.
func (l *MemoryLedger) TransferERC20(from, to, erc20 string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.decreaseERC20(from, erc20, amount); err != nil {
		return fmt.Errorf("transfer %s from %s to %s: %w", erc20, from, to, err)
	}
	_ = l.increaseERC20(to, erc20, amount)
	return nil
}

// TransferERC721 moves token ownership between accounts, all-or-nothing.
func (l *MemoryLedger) TransferERC721(from, to, erc721 string, tokenID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.removeERC721(from, erc721, tokenID); err != nil {
		return fmt.Errorf("transfer %s id %d from %s to %s: %w", erc721, tokenID, from, to, err)
	}
	l.addERC721(to, erc721, tokenID)
	return nil
}

// Trade settles one auction atomically: payment moves payer to payee and the
// item moves payee to payer, or out of the ledger entirely when withdrawItem
// is set and the payer takes delivery off-ledger. Both legs' preconditions are
// verified under one lock before either mutation, so a paid-but-undelivered
// state is unreachable and no intermediate owner is ever observable.
func (l *MemoryLedger) Trade(payer, payee, erc20 string, amount uint64, erc721 string, tokenID uint64, withdrawItem bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount == 0 {
		return fmt.Errorf("trade between %s and %s: %w", payer, payee, auctionerrors.ErrInvalidAmount)
	}
	if l.erc20Balance(payer, erc20) < amount {
		return fmt.Errorf("trade: payer %s balance of %s below %d: %w", payer, erc20, amount, auctionerrors.ErrInsufficientFunds)
	}
	if !l.ownsERC721(payee, erc721, tokenID) {
		return fmt.Errorf("trade: payee %s does not hold %s id %d: %w", payee, erc721, tokenID, auctionerrors.ErrNotOwned)
	}

	if err := l.decreaseERC20(payer, erc20, amount); err != nil {
		return fmt.Errorf("trade payment leg: %w", err)
	}
	_ = l.increaseERC20(payee, erc20, amount)

	if err := l.removeERC721(payee, erc721, tokenID); err != nil {
		// unreachable while the lock is held; escalate rather than unwind
		return fmt.Errorf("trade item leg after payment of %d %s: %w", amount, erc20, auctionerrors.ErrSettlementInconsistency)
	}
	if !withdrawItem {
		l.addERC721(payer, erc721, tokenID)
	}
	return nil
}

// BalanceOf returns a detached snapshot of an account's holdings.
func (l *MemoryLedger) BalanceOf(account string) Balance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := Balance{
		ERC20:  make(map[string]uint64),
		ERC721: make(map[string][]uint64),
	}
	b, ok := l.accounts[account]
	if !ok {
		return snapshot
	}

	snapshot.Ether = b.ether
	for erc20, amount := range b.erc20 {
		snapshot.ERC20[erc20] = amount
	}
	for erc721, tokens := range b.erc721 {
		ids := make([]uint64, 0, len(tokens))
		for id := range tokens {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		snapshot.ERC721[erc721] = ids
	}
	return snapshot
}

// ERC20BalanceOf returns an account's balance of one fungible asset.
// Unknown assets read as zero.
func (l *MemoryLedger) ERC20BalanceOf(account, erc20 string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.erc20Balance(account, erc20)
}

// OwnsERC721 reports whether an account's ownership set holds a token.
func (l *MemoryLedger) OwnsERC721(account, erc721 string, tokenID uint64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ownsERC721(account, erc721, tokenID)
}

// The unexported mutators assume the write lock is held and validate before
// touching state, so a failed call leaves the ledger unchanged.

func (l *MemoryLedger) increaseEther(account string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("increase ether for %s: %w", account, auctionerrors.ErrInvalidAmount)
	}
	l.account(account).ether += amount
	return nil
}

func (l *MemoryLedger) decreaseEther(account string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("decrease ether for %s: %w", account, auctionerrors.ErrInvalidAmount)
	}
	b := l.account(account)
	if b.ether < amount {
		return fmt.Errorf("decrease ether for %s by %d: %w", account, amount, auctionerrors.ErrInsufficientFunds)
	}
	b.ether -= amount
	return nil
}

func (l *MemoryLedger) increaseERC20(account, erc20 string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("increase %s for %s: %w", erc20, account, auctionerrors.ErrInvalidAmount)
	}
	l.account(account).erc20[erc20] += amount
	return nil
}

func (l *MemoryLedger) decreaseERC20(account, erc20 string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("decrease %s for %s: %w", erc20, account, auctionerrors.ErrInvalidAmount)
	}
	b := l.account(account)
	if b.erc20[erc20] < amount {
		return fmt.Errorf("decrease %s for %s by %d: %w", erc20, account, amount, auctionerrors.ErrInsufficientFunds)
	}
	b.erc20[erc20] -= amount
	return nil
}

func (l *MemoryLedger) addERC721(account, erc721 string, tokenID uint64) {
	b := l.account(account)
	tokens, ok := b.erc721[erc721]
	if !ok {
		tokens = make(map[uint64]struct{})
		b.erc721[erc721] = tokens
	}
	tokens[tokenID] = struct{}{}
}

func (l *MemoryLedger) removeERC721(account, erc721 string, tokenID uint64) error {
	b, ok := l.accounts[account]
	if !ok {
		return fmt.Errorf("remove %s id %d from %s: %w", erc721, tokenID, account, auctionerrors.ErrNotOwned)
	}
	tokens, ok := b.erc721[erc721]
	if !ok {
		return fmt.Errorf("remove %s id %d from %s: %w", erc721, tokenID, account, auctionerrors.ErrNotOwned)
	}
	if _, ok := tokens[tokenID]; !ok {
		return fmt.Errorf("remove %s id %d from %s: %w", erc721, tokenID, account, auctionerrors.ErrNotOwned)
	}
	delete(tokens, tokenID)
	return nil
}

func (l *MemoryLedger) erc20Balance(account, erc20 string) uint64 {
	b, ok := l.accounts[account]
	if !ok {
		return 0
	}
	return b.erc20[erc20]
}

func (l *MemoryLedger) ownsERC721(account, erc721 string, tokenID uint64) bool {
	b, ok := l.accounts[account]
	if !ok {
		return false
	}
	tokens, ok := b.erc721[erc721]
	if !ok {
		return false
	}
	_, ok = tokens[tokenID]
	return ok
}

// Package dispatch routes decoded rollup requests to the marketplace core.
// Advance requests carry a sender and timestamp and may mutate state;
// inspect requests are read-only path lookups. This is the only layer that
// builds output envelopes.
package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/models"
	"auction-house/internal/outputs"
	"auction-house/utils"
)

// ErrUnsupportedOperation marks a request whose method has no handler.
var ErrUnsupportedOperation = errors.New("operation not supported")

// Metadata identifies the caller of an advance request.
type Metadata struct {
	MsgSender string
	Timestamp time.Time
}

// HandlerFunc executes one named command against the core.
type HandlerFunc func(meta Metadata, args json.RawMessage) ([]outputs.Output, error)

// Portals holds the externally-deployed contract addresses whose messages
// are routed by sender instead of by method name.
type Portals struct {
	EtherPortal  string
	ERC20Portal  string
	ERC721Portal string
	AddressRelay string
}

// Dispatcher maps command names to handlers and routes portal deposits and
// the address relay by message sender.
type Dispatcher struct {
	svc     *auction.AuctionService
	ledger  ledger.AssetLedger
	portals Portals
	routes  map[string]HandlerFunc
}

// NewDispatcher wires the full command table.
func NewDispatcher(svc *auction.AuctionService, assetLedger ledger.AssetLedger, portals Portals) *Dispatcher {
	d := &Dispatcher{
		svc:     svc,
		ledger:  assetLedger,
		portals: portals,
	}
	d.routes = map[string]HandlerFunc{
		"ether_transfer":  d.etherTransfer,
		"ether_withdraw":  d.etherWithdraw,
		"erc20_transfer":  d.erc20Transfer,
		"erc20_withdraw":  d.erc20Withdraw,
		"erc721_transfer": d.erc721Transfer,
		"erc721_withdraw": d.erc721Withdraw,
		"auction_create":  d.auctionCreate,
		"place_bid":       d.placeBid,
		"end_auction":     d.endAuction,
	}
	return d
}

type advancePayload struct {
	Method string          `json:"method"`
	Args   json.RawMessage `json:"args"`
}

// Advance processes one mutating request. Portal senders carry deposits and
// the relay carries the boundary's own address; anything else is a named
// command from a user account.
func (d *Dispatcher) Advance(meta Metadata, payload []byte) ([]outputs.Output, error) {
	meta.MsgSender = strings.ToLower(meta.MsgSender)

	switch meta.MsgSender {
	case strings.ToLower(d.portals.EtherPortal):
		return d.etherDeposit(payload)
	case strings.ToLower(d.portals.ERC20Portal):
		return d.erc20Deposit(payload)
	case strings.ToLower(d.portals.ERC721Portal):
		return d.erc721Deposit(payload)
	case strings.ToLower(d.portals.AddressRelay):
		return d.relayAddress(payload)
	}

	var req advancePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("dispatch: decode advance payload: %w", err)
	}
	handler, ok := d.routes[strings.ToLower(req.Method)]
	if !ok {
		return nil, fmt.Errorf("dispatch: %q: %w", req.Method, ErrUnsupportedOperation)
	}
	utils.Info("executing operation", map[string]any{
		"method": req.Method,
		"sender": meta.MsgSender,
	})
	return handler(meta, req.Args)
}

// Inspect processes one read-only request of the form "route/arg".
func (d *Dispatcher) Inspect(path string) ([]outputs.Output, error) {
	parts := strings.SplitN(strings.Trim(path, "/"), "/", 2)
	route := strings.ToLower(parts[0])
	arg := ""
	if len(parts) == 2 {
		arg = parts[1]
	}

	switch route {
	case "balance":
		return d.balance(arg)
	case "query_auction":
		return d.queryAuction(arg)
	case "list_auctions":
		return d.listAuctions()
	case "list_bids":
		return d.listBids(arg)
	default:
		return nil, fmt.Errorf("dispatch: %q: %w", route, ErrUnsupportedOperation)
	}
}

// notice builds the typed notice payload convention used on the wire.
func notice(kind string, content any) (outputs.Output, error) {
	body, err := json.Marshal(struct {
		Type    string `json:"type"`
		Content any    `json:"content"`
	}{Type: kind, Content: content})
	if err != nil {
		return outputs.Output{}, fmt.Errorf("dispatch: encode %s notice: %w", kind, err)
	}
	return outputs.NewNotice(string(body)), nil
}

type etherDepositArgs struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

func (d *Dispatcher) etherDeposit(payload []byte) ([]outputs.Output, error) {
	var args etherDepositArgs
	if err := json.Unmarshal(payload, &args); err != nil {
		return nil, fmt.Errorf("dispatch: decode ether deposit: %w", err)
	}
	args.Account = strings.ToLower(args.Account)
	if err := d.ledger.IncreaseEther(args.Account, args.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: ether deposit: %w", err)
	}
	out, err := notice("ether_deposit", args)
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type erc20DepositArgs struct {
	Account string `json:"account"`
	ERC20   string `json:"erc20"`
	Amount  uint64 `json:"amount"`
}

func (d *Dispatcher) erc20Deposit(payload []byte) ([]outputs.Output, error) {
	var args erc20DepositArgs
	if err := json.Unmarshal(payload, &args); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc20 deposit: %w", err)
	}
	args.Account = strings.ToLower(args.Account)
	args.ERC20 = strings.ToLower(args.ERC20)
	if err := d.ledger.IncreaseERC20(args.Account, args.ERC20, args.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: erc20 deposit: %w", err)
	}
	out, err := notice("erc20_deposit", args)
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type erc721DepositArgs struct {
	Account string `json:"account"`
	ERC721  string `json:"erc721"`
	TokenID uint64 `json:"token_id"`
}

func (d *Dispatcher) erc721Deposit(payload []byte) ([]outputs.Output, error) {
	var args erc721DepositArgs
	if err := json.Unmarshal(payload, &args); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc721 deposit: %w", err)
	}
	args.Account = strings.ToLower(args.Account)
	args.ERC721 = strings.ToLower(args.ERC721)
	if err := d.ledger.AddERC721(args.Account, args.ERC721, args.TokenID); err != nil {
		return nil, fmt.Errorf("dispatch: erc721 deposit: %w", err)
	}
	out, err := notice("erc721_deposit", args)
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type relayArgs struct {
	Address string `json:"address"`
}

func (d *Dispatcher) relayAddress(payload []byte) ([]outputs.Output, error) {
	var args relayArgs
	if err := json.Unmarshal(payload, &args); err != nil {
		return nil, fmt.Errorf("dispatch: decode address relay: %w", err)
	}
	target := strings.ToLower(args.Address)
	d.svc.SetWithdrawalTarget(target)
	utils.Info("withdrawal target configured", map[string]any{"address": target})
	return []outputs.Output{outputs.NewNotice(fmt.Sprintf("withdrawal target set to %s", target))}, nil
}

type etherTransferArgs struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

func (d *Dispatcher) etherTransfer(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a etherTransferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode ether transfer: %w", err)
	}
	a.To = strings.ToLower(a.To)
	if err := d.ledger.TransferEther(meta.MsgSender, a.To, a.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: ether transfer: %w", err)
	}
	out, err := notice("ether_transfer", map[string]any{
		"from": meta.MsgSender, "to": a.To, "amount": a.Amount,
	})
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type etherWithdrawArgs struct {
	Amount uint64 `json:"amount"`
}

func (d *Dispatcher) etherWithdraw(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a etherWithdrawArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode ether withdraw: %w", err)
	}
	target := d.svc.WithdrawalTarget()
	if target == "" {
		return nil, fmt.Errorf("dispatch: ether withdraw: %w", auctionerrors.ErrWithdrawalTargetUnset)
	}
	if err := d.ledger.DecreaseEther(meta.MsgSender, a.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: ether withdraw: %w", err)
	}
	voucher, err := json.Marshal(map[string]any{"to": meta.MsgSender, "amount": a.Amount})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode ether withdraw voucher: %w", err)
	}
	return []outputs.Output{outputs.NewVoucher(target, voucher)}, nil
}

type erc20TransferArgs struct {
	To     string `json:"to"`
	ERC20  string `json:"erc20"`
	Amount uint64 `json:"amount"`
}

func (d *Dispatcher) erc20Transfer(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a erc20TransferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc20 transfer: %w", err)
	}
	a.To = strings.ToLower(a.To)
	a.ERC20 = strings.ToLower(a.ERC20)
	if err := d.ledger.TransferERC20(meta.MsgSender, a.To, a.ERC20, a.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: erc20 transfer: %w", err)
	}
	out, err := notice("erc20_transfer", map[string]any{
		"from": meta.MsgSender, "to": a.To, "erc20": a.ERC20, "amount": a.Amount,
	})
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type erc20WithdrawArgs struct {
	ERC20  string `json:"erc20"`
	Amount uint64 `json:"amount"`
}

func (d *Dispatcher) erc20Withdraw(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a erc20WithdrawArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc20 withdraw: %w", err)
	}
	a.ERC20 = strings.ToLower(a.ERC20)
	if err := d.ledger.DecreaseERC20(meta.MsgSender, a.ERC20, a.Amount); err != nil {
		return nil, fmt.Errorf("dispatch: erc20 withdraw: %w", err)
	}
	voucher, err := json.Marshal(map[string]any{"to": meta.MsgSender, "amount": a.Amount})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode erc20 withdraw voucher: %w", err)
	}
	return []outputs.Output{outputs.NewVoucher(a.ERC20, voucher)}, nil
}

type erc721TransferArgs struct {
	To      string `json:"to"`
	ERC721  string `json:"erc721"`
	TokenID uint64 `json:"token_id"`
}

func (d *Dispatcher) erc721Transfer(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a erc721TransferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc721 transfer: %w", err)
	}
	a.To = strings.ToLower(a.To)
	a.ERC721 = strings.ToLower(a.ERC721)
	if err := d.ledger.TransferERC721(meta.MsgSender, a.To, a.ERC721, a.TokenID); err != nil {
		return nil, fmt.Errorf("dispatch: erc721 transfer: %w", err)
	}
	out, err := notice("erc721_transfer", map[string]any{
		"from": meta.MsgSender, "to": a.To, "erc721": a.ERC721, "token_id": a.TokenID,
	})
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type erc721WithdrawArgs struct {
	ERC721  string `json:"erc721"`
	TokenID uint64 `json:"token_id"`
}

func (d *Dispatcher) erc721Withdraw(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a erc721WithdrawArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode erc721 withdraw: %w", err)
	}
	target := d.svc.WithdrawalTarget()
	if target == "" {
		return nil, fmt.Errorf("dispatch: erc721 withdraw: %w", auctionerrors.ErrWithdrawalTargetUnset)
	}
	a.ERC721 = strings.ToLower(a.ERC721)
	if err := d.ledger.RemoveERC721(meta.MsgSender, a.ERC721, a.TokenID); err != nil {
		return nil, fmt.Errorf("dispatch: erc721 withdraw: %w", err)
	}
	voucher, err := json.Marshal(map[string]any{"from": target, "to": meta.MsgSender, "token_id": a.TokenID})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode erc721 withdraw voucher: %w", err)
	}
	return []outputs.Output{outputs.NewVoucher(a.ERC721, voucher)}, nil
}

type auctionCreateArgs struct {
	Item         models.Item `json:"item"`
	ERC20        string      `json:"erc20"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	MinBidAmount uint64      `json:"min_bid_amount"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
}

func (d *Dispatcher) auctionCreate(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a auctionCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode auction create: %w", err)
	}
	a.ERC20 = strings.ToLower(a.ERC20)
	a.Item.ERC721 = strings.ToLower(a.Item.ERC721)

	created, err := d.svc.CreateAuction(meta.MsgSender, a.Item, a.ERC20, a.Title, a.Description,
		a.MinBidAmount, a.StartDate, a.EndDate, meta.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("dispatch: auction create: %w", err)
	}
	out, err := notice("auction_create", created)
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type placeBidArgs struct {
	AuctionID uint64 `json:"auction_id"`
	Amount    uint64 `json:"amount"`
}

func (d *Dispatcher) placeBid(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a placeBidArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode place bid: %w", err)
	}
	bid, err := d.svc.PlaceBid(meta.MsgSender, a.AuctionID, a.Amount, meta.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("dispatch: place bid: %w", err)
	}
	out, err := notice("auction_bid", bid)
	if err != nil {
		return nil, err
	}
	return []outputs.Output{out}, nil
}

type endAuctionArgs struct {
	AuctionID uint64 `json:"auction_id"`
	Withdraw  bool   `json:"withdraw"`
}

func (d *Dispatcher) endAuction(meta Metadata, args json.RawMessage) ([]outputs.Output, error) {
	var a endAuctionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("dispatch: decode end auction: %w", err)
	}
	result, err := d.svc.EndAuction(a.AuctionID, meta.MsgSender, meta.Timestamp, a.Withdraw)
	if err != nil {
		return nil, fmt.Errorf("dispatch: end auction: %w", err)
	}

	var outs []outputs.Output
	if result.WinningBid == nil {
		out, err := notice("auction_end", map[string]any{"auction_id": result.Auction.ID})
		if err != nil {
			return nil, err
		}
		return append(outs, out), nil
	}

	out, err := notice("auction_end", result.WinningBid)
	if err != nil {
		return nil, err
	}
	outs = append(outs, out)

	if result.Withdrawal != nil {
		voucher, err := json.Marshal(result.Withdrawal)
		if err != nil {
			return nil, fmt.Errorf("dispatch: encode withdrawal voucher: %w", err)
		}
		outs = append(outs, outputs.NewVoucher(result.Withdrawal.ERC721, voucher))
		receipt, err := notice("auction_withdraw", result.Withdrawal)
		if err != nil {
			return nil, err
		}
		outs = append(outs, receipt)
	}
	return outs, nil
}

func (d *Dispatcher) balance(account string) ([]outputs.Output, error) {
	snapshot := d.ledger.BalanceOf(strings.ToLower(account))
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode balance: %w", err)
	}
	return []outputs.Output{outputs.NewReport(string(body))}, nil
}

func (d *Dispatcher) queryAuction(arg string) ([]outputs.Output, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("dispatch: parse auction id %q: %w", arg, err)
	}
	found, err := d.svc.GetAuction(id)
	if err != nil {
		return nil, fmt.Errorf("dispatch: query auction: %w", err)
	}
	body, err := json.Marshal(found)
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode auction: %w", err)
	}
	return []outputs.Output{outputs.NewLog(string(body))}, nil
}

func (d *Dispatcher) listAuctions() ([]outputs.Output, error) {
	body, err := json.Marshal(d.svc.ListAuctions())
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode auctions: %w", err)
	}
	return []outputs.Output{outputs.NewReport(string(body))}, nil
}

func (d *Dispatcher) listBids(arg string) ([]outputs.Output, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("dispatch: parse auction id %q: %w", arg, err)
	}
	bids, err := d.svc.ListBids(id)
	if err != nil {
		return nil, fmt.Errorf("dispatch: list bids: %w", err)
	}
	body, err := json.Marshal(bids)
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode bids: %w", err)
	}
	return []outputs.Output{outputs.NewLog(string(body))}, nil
}

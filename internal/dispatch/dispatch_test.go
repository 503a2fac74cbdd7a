package dispatch

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/outputs"

	"github.com/stretchr/testify/require"
)

const (
	etherPortal  = "0xetherportal"
	erc20Portal  = "0xerc20portal"
	erc721Portal = "0xerc721portal"
	addressRelay = "0xaddressrelay"

	seller = "0xseller"
	bidder = "0xbidder"
	dai    = "0xdai"
	punk   = "0xpunk"
)

func newTestDispatcher() (*Dispatcher, *ledger.MemoryLedger) {
	assetLedger := ledger.NewMemoryLedger()
	svc := auction.NewAuctionService(assetLedger)
	d := NewDispatcher(svc, assetLedger, Portals{
		EtherPortal:  etherPortal,
		ERC20Portal:  erc20Portal,
		ERC721Portal: erc721Portal,
		AddressRelay: addressRelay,
	})
	return d, assetLedger
}

func meta(sender string, at time.Time) Metadata {
	return Metadata{MsgSender: sender, Timestamp: at}
}

func command(t *testing.T, method string, args any) []byte {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	payload, err := json.Marshal(advancePayload{Method: method, Args: raw})
	require.NoError(t, err)
	return payload
}

// decodedContent unwraps a notice payload into its type and content.
func decodedContent(t *testing.T, out outputs.Output) (string, map[string]any) {
	t.Helper()
	text, err := out.DecodedPayload()
	require.NoError(t, err)
	var body struct {
		Type    string         `json:"type"`
		Content map[string]any `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &body))
	return body.Type, body.Content
}

// Tests deposits routed by portal sender
func TestDispatcher_Deposits(t *testing.T) {
	t.Parallel()

	d, assetLedger := newTestDispatcher()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		sender  string
		payload string
		check   func(t *testing.T)
	}{
		{
			name:    "ether_deposit",
			sender:  etherPortal,
			payload: fmt.Sprintf(`{"account":%q,"amount":100}`, seller),
			check: func(t *testing.T) {
				require.Equal(t, uint64(100), assetLedger.BalanceOf(seller).Ether)
			},
		},
		{
			name:    "erc20_deposit",
			sender:  erc20Portal,
			payload: fmt.Sprintf(`{"account":%q,"erc20":%q,"amount":500}`, bidder, dai),
			check: func(t *testing.T) {
				require.Equal(t, uint64(500), assetLedger.ERC20BalanceOf(bidder, dai))
			},
		},
		{
			name:    "erc721_deposit",
			sender:  erc721Portal,
			payload: fmt.Sprintf(`{"account":%q,"erc721":%q,"token_id":7}`, seller, punk),
			check: func(t *testing.T) {
				require.True(t, assetLedger.OwnsERC721(seller, punk, 7))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outs, err := d.Advance(meta(tc.sender, now), []byte(tc.payload))
			require.NoError(t, err)
			require.Len(t, outs, 1)
			require.Equal(t, outputs.KindNotice, outs[0].Kind)
			tc.check(t)
		})
	}
}

// Tests rejection paths at the dispatch boundary
func TestDispatcher_Rejections(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher()
	now := time.Now().UTC()

	_, err := d.Advance(meta(bidder, now), []byte(`{"method":"mint_unicorn","args":{}}`))
	require.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = d.Advance(meta(bidder, now), []byte(`not json`))
	require.Error(t, err)

	_, err = d.Inspect("no_such_route/1")
	require.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = d.Inspect("query_auction/notanumber")
	require.Error(t, err)

	// withdrawals need the relay-provided target
	_, err = d.Advance(meta(bidder, now), command(t, "ether_withdraw", map[string]any{"amount": 1}))
	require.ErrorIs(t, err, auctionerrors.ErrWithdrawalTargetUnset)
}

// Tests wallet transfers and withdrawals through the command table
func TestDispatcher_WalletCommands(t *testing.T) {
	t.Parallel()

	d, assetLedger := newTestDispatcher()
	now := time.Now().UTC()

	require.NoError(t, assetLedger.IncreaseEther(seller, 100))
	require.NoError(t, assetLedger.IncreaseERC20(seller, dai, 50))
	require.NoError(t, assetLedger.AddERC721(seller, punk, 3))

	outs, err := d.Advance(meta(seller, now), command(t, "ether_transfer", map[string]any{"to": bidder, "amount": 40}))
	require.NoError(t, err)
	require.Equal(t, outputs.KindNotice, outs[0].Kind)
	require.Equal(t, uint64(60), assetLedger.BalanceOf(seller).Ether)
	require.Equal(t, uint64(40), assetLedger.BalanceOf(bidder).Ether)

	outs, err = d.Advance(meta(seller, now), command(t, "erc20_transfer", map[string]any{"to": bidder, "erc20": dai, "amount": 50}))
	require.NoError(t, err)
	require.Equal(t, uint64(50), assetLedger.ERC20BalanceOf(bidder, dai))

	outs, err = d.Advance(meta(seller, now), command(t, "erc721_transfer", map[string]any{"to": bidder, "erc721": punk, "token_id": 3}))
	require.NoError(t, err)
	require.True(t, assetLedger.OwnsERC721(bidder, punk, 3))

	// configure the withdrawal target through the relay, then withdraw
	_, err = d.Advance(meta(addressRelay, now), []byte(`{"address":"0xDAPP"}`))
	require.NoError(t, err)

	outs, err = d.Advance(meta(bidder, now), command(t, "erc721_withdraw", map[string]any{"erc721": punk, "token_id": 3}))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Equal(t, outputs.KindVoucher, outs[0].Kind)
	require.Equal(t, punk, outs[0].Destination)
	require.False(t, assetLedger.OwnsERC721(bidder, punk, 3))

	outs, err = d.Advance(meta(bidder, now), command(t, "ether_withdraw", map[string]any{"amount": 40}))
	require.NoError(t, err)
	require.Equal(t, outputs.KindVoucher, outs[0].Kind)
	require.Equal(t, "0xdapp", outs[0].Destination)
	require.Equal(t, uint64(0), assetLedger.BalanceOf(bidder).Ether)

	outs, err = d.Advance(meta(bidder, now), command(t, "erc20_withdraw", map[string]any{"erc20": dai, "amount": 50}))
	require.NoError(t, err)
	require.Equal(t, outputs.KindVoucher, outs[0].Kind)
	require.Equal(t, dai, outs[0].Destination)
	require.Equal(t, uint64(0), assetLedger.ERC20BalanceOf(bidder, dai))
}

// Tests the full auction flow through advance and inspect requests
func TestDispatcher_AuctionFlow(t *testing.T) {
	t.Parallel()

	d, assetLedger := newTestDispatcher()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, assetLedger.AddERC721(seller, punk, 7))
	require.NoError(t, assetLedger.IncreaseERC20(bidder, dai, 1000))

	outs, err := d.Advance(meta(seller, now), command(t, "auction_create", map[string]any{
		"item":           map[string]any{"erc721": punk, "token_id": 7},
		"erc20":          dai,
		"title":          "rare punk",
		"description":    "one of one",
		"min_bid_amount": 10,
		"start_date":     now.Format(time.RFC3339),
		"end_date":       now.Add(24 * time.Hour).Format(time.RFC3339),
	}))
	require.NoError(t, err)
	kind, content := decodedContent(t, outs[0])
	require.Equal(t, "auction_create", kind)
	require.Equal(t, float64(1), content["id"])
	require.Equal(t, "CREATED", content["state"])

	outs, err = d.Advance(meta(bidder, now.Add(time.Minute)), command(t, "place_bid", map[string]any{
		"auction_id": 1,
		"amount":     15,
	}))
	require.NoError(t, err)
	kind, content = decodedContent(t, outs[0])
	require.Equal(t, "auction_bid", kind)
	require.Equal(t, float64(15), content["amount"])

	// read-only projections
	outs, err = d.Inspect("query_auction/1")
	require.NoError(t, err)
	require.Equal(t, outputs.KindLog, outs[0].Kind)

	outs, err = d.Inspect("list_bids/1")
	require.NoError(t, err)
	text, err := outs[0].DecodedPayload()
	require.NoError(t, err)
	var bids []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &bids))
	require.Len(t, bids, 1)

	outs, err = d.Inspect("list_auctions")
	require.NoError(t, err)
	require.Equal(t, outputs.KindReport, outs[0].Kind)

	// settle with an immediate withdrawal by the winner
	_, err = d.Advance(meta(addressRelay, now), []byte(`{"address":"0xdapp"}`))
	require.NoError(t, err)

	outs, err = d.Advance(meta(bidder, now.Add(25*time.Hour)), command(t, "end_auction", map[string]any{
		"auction_id": 1,
		"withdraw":   true,
	}))
	require.NoError(t, err)
	require.Len(t, outs, 3)
	require.Equal(t, outputs.KindNotice, outs[0].Kind)
	require.Equal(t, outputs.KindVoucher, outs[1].Kind)
	require.Equal(t, punk, outs[1].Destination)
	require.Equal(t, outputs.KindNotice, outs[2].Kind)

	// payment settled, item withdrawn out of the ledger entirely
	require.Equal(t, uint64(985), assetLedger.ERC20BalanceOf(bidder, dai))
	require.Equal(t, uint64(15), assetLedger.ERC20BalanceOf(seller, dai))
	require.False(t, assetLedger.OwnsERC721(seller, punk, 7))
	require.False(t, assetLedger.OwnsERC721(bidder, punk, 7))

	// the balance report reflects the settlement
	outs, err = d.Inspect("balance/" + bidder)
	require.NoError(t, err)
	text, err = outs[0].DecodedPayload()
	require.NoError(t, err)
	var balance ledger.Balance
	require.NoError(t, json.Unmarshal([]byte(text), &balance))
	require.Equal(t, uint64(985), balance.ERC20[dai])
}

// Tests ending an auction with no bids
func TestDispatcher_EndUnsold(t *testing.T) {
	t.Parallel()

	d, assetLedger := newTestDispatcher()
	now := time.Now().UTC()

	require.NoError(t, assetLedger.AddERC721(seller, punk, 9))

	_, err := d.Advance(meta(seller, now), command(t, "auction_create", map[string]any{
		"item":           map[string]any{"erc721": punk, "token_id": 9},
		"erc20":          dai,
		"title":          "unwanted",
		"description":    "no takers",
		"min_bid_amount": 10,
		"start_date":     now.Format(time.RFC3339Nano),
		"end_date":       now.Add(time.Hour).Format(time.RFC3339Nano),
	}))
	require.NoError(t, err)

	outs, err := d.Advance(meta(seller, now.Add(2*time.Hour)), command(t, "end_auction", map[string]any{
		"auction_id": 1,
	}))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	kind, content := decodedContent(t, outs[0])
	require.Equal(t, "auction_end", kind)
	require.Equal(t, float64(1), content["auction_id"])

	// the unsold item never moved
	require.True(t, assetLedger.OwnsERC721(seller, punk, 9))

	// terminal state: a second end is rejected
	_, err = d.Advance(meta(seller, now.Add(3*time.Hour)), command(t, "end_auction", map[string]any{
		"auction_id": 1,
	}))
	require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)
}

package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/dispatch"
	"auction-house/internal/ledger"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
)

const (
	etherPortal  = "0xetherportal"
	erc20Portal  = "0xerc20portal"
	erc721Portal = "0xerc721portal"
	addressRelay = "0xaddressrelay"
)

// SetupTestRouter initializes the router with an in-memory ledger for
// integration testing. The ledger is returned for direct seeding/asserts.
func SetupTestRouter() (*gin.Engine, *ledger.MemoryLedger) {
	gin.SetMode(gin.TestMode)
	assetLedger := ledger.NewMemoryLedger()
	svc := auction.NewAuctionService(assetLedger)
	dispatcher := dispatch.NewDispatcher(svc, assetLedger, dispatch.Portals{
		EtherPortal:  etherPortal,
		ERC20Portal:  erc20Portal,
		ERC721Portal: erc721Portal,
		AddressRelay: addressRelay,
	})
	router := server.SetupRouter(dispatcher)
	return router, assetLedger
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Advance posts one advance request built from sender, timestamp and a
// method/args payload, returning the parsed response body.
func Advance(t *testing.T, router *gin.Engine, sender string, timestamp int64, payload any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	body, err := json.Marshal(map[string]any{
		"metadata": map[string]any{
			"msg_sender": sender,
			"timestamp":  timestamp,
		},
		"payload": json.RawMessage(rawPayload),
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	w := ExecuteRequest(t, router, "POST", "/advance", body)
	return parseResponse(t, w), w
}

// Inspect issues one inspect request and returns the parsed response body.
func Inspect(t *testing.T, router *gin.Engine, path string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := ExecuteRequest(t, router, "GET", "/inspect/"+path, nil)
	return parseResponse(t, w), w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp
}

// responseData unwraps the data envelope of a response body.
func responseData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// command builds a method/args advance payload.
func command(method string, args map[string]any) map[string]any {
	return map[string]any{"method": method, "args": args}
}

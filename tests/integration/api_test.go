package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "ticket-store-ledger/internal/adapter/http/handler"
	"ticket-store-ledger/internal/adapter/storage/memory"
	redisStorage "ticket-store-ledger/internal/adapter/storage/redis"
	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerAddr     = "0xowner"
	organizerAddr = "0xorganizer"
	customerAddr  = "0xcustomer"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// token auth, the ledger core over in-memory storage, and Redis-backed
// idempotency via miniredis.
type testApp struct {
	server   *httptest.Server
	treasury *memory.Treasury
	tokenSvc *service.JWTTokenService
	tokens   map[string]string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	treasury := memory.NewTreasury()
	ledger, err := service.NewLedgerService(
		context.Background(),
		"ticket-store-ledger",
		ownerAddr,
		memory.NewEventRepo(),
		memory.NewPurchaseRepo(),
		memory.NewJournal(),
		treasury,
		zerolog.Nop(),
	)
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:           ledger,
		TokenSvc:         tokenSvc,
		IdempotencyCache: redisStorage.NewIdempotencyCache(rdb),
		Logger:           zerolog.Nop(),
	})

	app := &testApp{
		server:   httptest.NewServer(router),
		treasury: treasury,
		tokenSvc: tokenSvc,
		tokens:   map[string]string{},
	}
	for _, addr := range []string{ownerAddr, organizerAddr, customerAddr} {
		token, _, err := tokenSvc.Generate(domain.Address(addr))
		require.NoError(t, err)
		app.tokens[addr] = token
	}
	t.Cleanup(app.server.Close)
	return app
}

func (app *testApp) do(t *testing.T, method, path, caller string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, app.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("Authorization", "Bearer "+app.tokens[caller])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return resp.StatusCode, parsed
}

func data(t *testing.T, parsed map[string]any) map[string]any {
	t.Helper()
	d, ok := parsed["data"].(map[string]any)
	require.True(t, ok, "missing data envelope: %v", parsed)
	return d
}

func TestTicketSaleLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Open the store.
	status, _ := app.do(t, http.MethodPost, "/api/v1/store/open", ownerAddr, nil)
	require.Equal(t, http.StatusOK, status)

	// Create an event: 10% incentive, price 100000, 10 tickets.
	status, body := app.do(t, http.MethodPost, "/api/v1/events", ownerAddr, map[string]any{
		"external_id":         "EVT-001",
		"organizer":           organizerAddr,
		"name":                "Gopher Night",
		"store_incentive_bps": 1000,
		"ticket_price":        100000,
		"tickets_on_sale":     10,
	})
	require.Equal(t, http.StatusCreated, status)
	eventID := int(data(t, body)["id"].(float64))
	require.Equal(t, 1, eventID)

	// Non-organizer cannot start sales.
	status, body = app.do(t, http.MethodPost, "/api/v1/events/1/start-sales", customerAddr, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_002", body["error_code"])

	status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/start-sales", organizerAddr, nil)
	require.Equal(t, http.StatusOK, status)

	// Purchase 2 tickets with exact payment.
	status, body = app.do(t, http.MethodPost, "/api/v1/events/1/purchases", customerAddr, map[string]any{
		"quantity":       2,
		"external_id":    "ORDER-001",
		"timestamp":      1700000000,
		"customer_id":    "CUST-001",
		"attached_value": 200000,
	})
	require.Equal(t, http.StatusCreated, status)
	purchaseID := int(data(t, body)["id"].(float64))
	require.Equal(t, 1, purchaseID)

	// Wrong payment is rejected.
	status, body = app.do(t, http.MethodPost, "/api/v1/events/1/purchases", customerAddr, map[string]any{
		"quantity":       1,
		"external_id":    "ORDER-002",
		"timestamp":      1700000001,
		"customer_id":    "CUST-001",
		"attached_value": 50000,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_009", body["error_code"])

	// Sales snapshot reflects the sale.
	status, body = app.do(t, http.MethodGet, "/api/v1/events/1/sales", "", nil)
	require.Equal(t, http.StatusOK, status)
	sales := data(t, body)
	assert.Equal(t, float64(8), sales["tickets_left"])
	assert.Equal(t, float64(200000), sales["event_balance"])

	// Close the books and settle: organizer 90%, store 10%.
	for _, step := range []string{"end-sales", "complete", "settle"} {
		status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/"+step, organizerAddr, nil)
		require.Equal(t, http.StatusOK, status, step)
	}
	assert.Equal(t, uint64(180000), app.treasury.PaidTo(organizerAddr))

	status, body = app.do(t, http.MethodGet, "/api/v1/store", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(20000), data(t, body)["settled_balance"])

	// Close the store: the incentive is swept to the owner.
	status, _ = app.do(t, http.MethodPost, "/api/v1/store/close", ownerAddr, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint64(20000), app.treasury.PaidTo(ownerAddr))

	// The notification feed recorded one entry per successful command.
	status, body = app.do(t, http.MethodGet, "/api/v1/notifications", "", nil)
	require.Equal(t, http.StatusOK, status)
	items := data(t, body)["items"].([]any)
	require.Len(t, items, 8)
	last := items[len(items)-1].(map[string]any)
	assert.Equal(t, "STORE_CLOSED", last["kind"])
	assert.Equal(t, float64(8), last["sequence"])
}

func TestCancelAndRefundFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.do(t, http.MethodPost, "/api/v1/store/open", ownerAddr, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = app.do(t, http.MethodPost, "/api/v1/events", ownerAddr, map[string]any{
		"external_id":     "EVT-001",
		"organizer":       organizerAddr,
		"name":            "Gopher Night",
		"ticket_price":    100000,
		"tickets_on_sale": 5,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/start-sales", organizerAddr, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/purchases", customerAddr, map[string]any{
		"quantity":       1,
		"external_id":    "ORDER-001",
		"timestamp":      1700000000,
		"customer_id":    "CUST-001",
		"attached_value": 100000,
	})
	require.Equal(t, http.StatusCreated, status)

	// A stranger's cancel bounces; identifiers must also match.
	status, body := app.do(t, http.MethodPost, "/api/v1/purchases/1/cancel", organizerAddr, map[string]any{
		"external_id": "ORDER-001",
		"customer_id": "CUST-001",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_003", body["error_code"])

	status, body = app.do(t, http.MethodPost, "/api/v1/purchases/1/cancel", customerAddr, map[string]any{
		"external_id": "ORDER-999",
		"customer_id": "CUST-001",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_004", body["error_code"])

	status, _ = app.do(t, http.MethodPost, "/api/v1/purchases/1/cancel", customerAddr, map[string]any{
		"external_id": "ORDER-001",
		"customer_id": "CUST-001",
	})
	require.Equal(t, http.StatusOK, status)

	// Only the organizer may release the refund.
	status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/purchases/1/refund", organizerAddr, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint64(100000), app.treasury.PaidTo(customerAddr))

	status, body = app.do(t, http.MethodGet, "/api/v1/purchases/1", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "REFUNDED", data(t, body)["status"])
}

func TestPurchaseIdempotencyReplay(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.do(t, http.MethodPost, "/api/v1/store/open", ownerAddr, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = app.do(t, http.MethodPost, "/api/v1/events", ownerAddr, map[string]any{
		"external_id":     "EVT-001",
		"organizer":       organizerAddr,
		"name":            "Gopher Night",
		"ticket_price":    1000,
		"tickets_on_sale": 5,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = app.do(t, http.MethodPost, "/api/v1/events/1/start-sales", organizerAddr, nil)
	require.Equal(t, http.StatusOK, status)

	payload, err := json.Marshal(map[string]any{
		"quantity":       1,
		"external_id":    "ORDER-001",
		"timestamp":      1700000000,
		"customer_id":    "CUST-001",
		"attached_value": 1000,
	})
	require.NoError(t, err)

	send := func() (int, string) {
		req, err := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/events/1/purchases", bytes.NewReader(payload))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+app.tokens[customerAddr])
		req.Header.Set("X-Idempotency-Key", "retry-abc")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(raw)
	}

	firstStatus, firstBody := send()
	require.Equal(t, http.StatusCreated, firstStatus)

	secondStatus, secondBody := send()
	assert.Equal(t, http.StatusCreated, secondStatus)
	assert.Equal(t, firstBody, secondBody, "retry must replay, not re-execute")

	// Only one ticket actually sold.
	status, body := app.do(t, http.MethodGet, "/api/v1/events/1/sales", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), data(t, body)["tickets_sold"])
}

func TestQueriesNeedNoToken(t *testing.T) {
	app := newTestApp(t)

	status, body := app.do(t, http.MethodGet, "/api/v1/store", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "CREATED", data(t, body)["status"])

	status, body = app.do(t, http.MethodGet, "/api/v1/events/42", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NF_001", body["error_code"])
}

var _ ports.TicketLedger = (*service.LedgerService)(nil)

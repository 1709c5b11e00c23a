package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/internal/core/ports/mocks"
	"ticket-store-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCallerAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good").
		Return(&ports.TokenClaims{Caller: domain.Address("0xcustomer")}, nil).AnyTimes()
	tokenSvc.EXPECT().Validate("bad").Return(nil, assert.AnError).AnyTimes()

	r := newEngine()
	r.POST("/cmd", CallerAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		caller, ok := Caller(c)
		require.True(t, ok)
		response.OK(c, gin.H{"caller": string(caller)})
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestMaxBodySize(t *testing.T) {
	r := newEngine()
	r.Use(MaxBodySize(16))
	r.POST("/cmd", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodPost, "/cmd", strings.NewReader(`{"k":"`+strings.Repeat("x", 64)+`"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	cache := newFakeCache()
	calls := 0

	r := newEngine()
	r.POST("/cmd", func(c *gin.Context) {
		c.Set(CtxCaller, domain.Address("0xcustomer"))
		c.Next()
	}, Idempotency(cache, zerolog.Nop()), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"id": calls})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
		req.Header.Set(HeaderIdempotencyKey, "retry-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, calls)

	second := send()
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, calls, "retry must not re-execute the command")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replay"))
}

func TestIdempotency_CapturesStringWrites(t *testing.T) {
	cache := newFakeCache()
	calls := 0

	r := newEngine()
	r.POST("/cmd", func(c *gin.Context) {
		c.Set(CtxCaller, domain.Address("0xcustomer"))
		c.Next()
	}, Idempotency(cache, zerolog.Nop()), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
		_, _ = c.Writer.WriteString(`{"status":"OPEN"}`)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
		req.Header.Set(HeaderIdempotencyKey, "retry-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, `{"status":"OPEN"}`, first.Body.String())

	second := send()
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String(), "string-rendered bodies replay intact")
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	cache := newFakeCache()
	calls := 0

	r := newEngine()
	r.POST("/cmd", func(c *gin.Context) {
		c.Set(CtxCaller, domain.Address("0xcustomer"))
		c.Next()
	}, Idempotency(cache, zerolog.Nop()), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"id": calls})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ErrorsNotCached(t *testing.T) {
	cache := newFakeCache()
	calls := 0

	r := newEngine()
	r.POST("/cmd", func(c *gin.Context) {
		c.Set(CtxCaller, domain.Address("0xcustomer"))
		c.Next()
	}, Idempotency(cache, zerolog.Nop()), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusConflict, gin.H{"error_code": "ST_001"})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
		req.Header.Set(HeaderIdempotencyKey, "retry-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	}
	assert.Equal(t, 2, calls, "rejected commands may be retried for real")
}

func TestRecovery(t *testing.T) {
	r := newEngine()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCounterStore struct {
	counts map[string]int64
	fail   bool
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[string]int64)}
}

func (f *fakeCounterStore) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCounterStore) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (f *fakeCounterStore) Delete(context.Context, ...string) error { return nil }

func (f *fakeCounterStore) Ping(context.Context) error { return nil }

func (f *fakeCounterStore) Increment(_ context.Context, key string) (int64, error) {
	if f.fail {
		return 0, errors.New("connection refused")
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounterStore) Expire(context.Context, string, time.Duration) error { return nil }

func rateLimitedRouter(store *fakeCounterStore, max int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/limited", RateLimit(store, "test", max, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performRequest(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitAllowsUpToMax(t *testing.T) {
	router := rateLimitedRouter(newFakeCounterStore(), 3)

	for i := 0; i < 3; i++ {
		w := performRequest(router, "203.0.113.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := performRequest(router, "203.0.113.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitIsPerClient(t *testing.T) {
	router := rateLimitedRouter(newFakeCounterStore(), 1)

	w := performRequest(router, "203.0.113.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "203.0.113.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client gets its own counter.
	w = performRequest(router, "203.0.113.2:1234")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitFailsOpenWhenStoreDown(t *testing.T) {
	store := newFakeCounterStore()
	store.fail = true
	router := rateLimitedRouter(store, 1)

	for i := 0; i < 5; i++ {
		w := performRequest(router, "203.0.113.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

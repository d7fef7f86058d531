package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, key *entity.IdempotencyKey) error {
	r.keys[key.Key] = key
	return nil
}

func (r *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	stored, ok := r.keys[key]
	if !ok || stored.UserID != userID {
		return nil, nil
	}
	return stored, nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error { return nil }

func settlementRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", userID) },
		Idempotency(IdempotencyConfig{Repo: repo, RequireKey: true}),
		func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"ticket": "TCK-1"})
		})
	return router
}

func TestIdempotencyRejectsUnkeyedSettlement(t *testing.T) {
	var calls int
	router := settlementRouter(newFakeIdempotencyRepo(), uuid.New(), &calls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls)
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	var calls int
	userID := uuid.New()
	router := settlementRouter(newFakeIdempotencyRepo(), userID, &calls)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "double-tap")
	router.ServeHTTP(first, req)
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, calls)

	// The retry never reaches the handler and returns the first ticket.
	second := httptest.NewRecorder()
	retry := httptest.NewRequest(http.MethodPost, "/sales", nil)
	retry.Header.Set(IdempotencyKeyHeader, "double-tap")
	router.ServeHTTP(second, retry)

	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
}

func TestIdempotencyDoesNotStoreFailedResponses(t *testing.T) {
	var calls int
	gin.SetMode(gin.TestMode)
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()

	router := gin.New()
	router.POST("/sales",
		func(c *gin.Context) { c.Set("user_id", userID) },
		Idempotency(IdempotencyConfig{Repo: repo, RequireKey: true}),
		func(c *gin.Context) {
			calls++
			if calls == 1 {
				c.JSON(http.StatusConflict, gin.H{"success": false})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"ticket": "TCK-2"})
		})

	for _, want := range []int{http.StatusConflict, http.StatusCreated} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sales", nil)
		req.Header.Set(IdempotencyKeyHeader, "retry-after-failure")
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
	assert.Equal(t, 2, calls)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devarsh/admin-user-portal/internal/auth"
)

type fakeSessions struct {
	records map[string]int64
}

func (f *fakeSessions) Create(ctx context.Context, jti string, userID int64) error {
	f.records[jti] = userID
	return nil
}

func (f *fakeSessions) Get(ctx context.Context, jti string) (int64, error) {
	return f.records[jti], nil
}

func (f *fakeSessions) Delete(ctx context.Context, jti string) error {
	delete(f.records, jti)
	return nil
}

var testSecret = []byte("test-secret")

func protected(t *testing.T, sessions auth.Sessions) (http.Handler, *int64) {
	t.Helper()
	var gotUserID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value("user_id").(int64)
		require.True(t, ok, "user_id must be set in context")
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(testSecret, sessions)(inner), &gotUserID
}

func TestRequireAuth_NoToken(t *testing.T) {
	t.Parallel()

	h, _ := protected(t, &fakeSessions{records: map[string]int64{}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_BadToken(t *testing.T) {
	t.Parallel()

	h, _ := protected(t, &fakeSessions{records: map[string]int64{}})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RevokedSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{records: map[string]int64{}}
	// Valid signature, but no session record: revoked or never issued.
	token, _, _, err := auth.GenerateToken(9, testSecret, time.Hour)
	require.NoError(t, err)

	h, _ := protected(t, sessions)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session expired")
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{records: map[string]int64{}}
	token, jti, _, err := auth.GenerateToken(9, testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessions.Create(context.Background(), jti, 9))

	h, gotUserID := protected(t, sessions)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), *gotUserID)
}

func TestRequireAuth_SessionUserMismatch(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{records: map[string]int64{}}
	token, jti, _, err := auth.GenerateToken(9, testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessions.Create(context.Background(), jti, 8))

	h, _ := protected(t, sessions)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{records: map[string]int64{}}
	token, jti, _, err := auth.GenerateToken(3, testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessions.Create(context.Background(), jti, 3))

	h, gotUserID := protected(t, sessions)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), *gotUserID)
}

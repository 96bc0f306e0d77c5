package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/repository/memory"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
	"github.com/passportpals/passportpals-backend/internal/seed"
	"github.com/passportpals/passportpals-backend/internal/storage"
	"github.com/passportpals/passportpals-backend/internal/usecase/auth"
)

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ns := storage.Namespace("test")

	return auth.NewAuthUseCase(
		seed.NewStore(),
		memory.NewStateRepository(store, ns),
		memory.NewSwipeRepository(store, ns),
		memory.NewMatchRepository(store, ns),
		memory.NewTripRepository(store, ns),
		memory.NewMessageRepository(),
		memory.NewPointsRepository(store, ns),
		memory.NewReviewRepository(),
		scheduler.NewManual(),
		clock.NewFixed(time.Now()),
		"0123456789abcdef0123456789abcdef",
		7*24*time.Hour,
	)
}

func newProtectedRouter(uc *auth.AuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(uc).RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_AcceptsSessionToken(t *testing.T) {
	uc := newAuthUseCase(t)
	r := newProtectedRouter(uc)

	result, err := uc.Login(context.Background(), "hiro@passportpals.app", seed.DemoPassword)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+result.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_RejectsMissingOrMalformedHeader(t *testing.T) {
	uc := newAuthUseCase(t)
	r := newProtectedRouter(uc)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer not-a-jwt").Code)
}

// A token from an earlier login must not act as whoever signed in afterwards.
func TestRequireAuth_RejectsTokenForReplacedSession(t *testing.T) {
	uc := newAuthUseCase(t)
	r := newProtectedRouter(uc)

	hiro, err := uc.Login(context.Background(), "hiro@passportpals.app", seed.DemoPassword)
	require.NoError(t, err)
	demo, err := uc.LoginAsDemo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+hiro.Token).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+demo.Token).Code)
}

func TestRequireAuth_RejectsTokenAfterLogout(t *testing.T) {
	uc := newAuthUseCase(t)
	r := newProtectedRouter(uc)

	result, err := uc.LoginAsDemo(context.Background())
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background()))

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+result.Token).Code)
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	sharedauth "resume-builder/internal/shared/auth"
	"resume-builder/internal/users"
)

func newTestService(t *testing.T, userSvc *users.Service) (*GoogleService, *sharedauth.Issuer) {
	t.Helper()
	issuer, err := sharedauth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	svc := NewGoogleService(GoogleConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:5000/auth/google/callback",
		UIRedirect:   "http://localhost:5173/login",
	}, issuer, userSvc)
	return svc, issuer
}

func newAuthRouter(svc *GoogleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc.RegisterRoutes(r.Group("/auth"))
	return r
}

func TestStartRequiresConfiguration(t *testing.T) {
	svc := NewGoogleService(GoogleConfig{}, nil, nil)
	resp := httptest.NewRecorder()
	newAuthRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth/google/start", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestStartRedirectsWithState(t *testing.T) {
	svc, _ := newTestService(t, nil)
	resp := httptest.NewRecorder()
	newAuthRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth/google/start", nil))

	require.Equal(t, http.StatusFound, resp.Code)
	loc, err := url.Parse(resp.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	assert.True(t, svc.stateStore.consume(state))
	assert.False(t, svc.stateStore.consume(state))
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	svc, _ := newTestService(t, nil)
	router := newAuthRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=nope&code=abc", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCallbackIssuesTokenAndStoresUser(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			if r.Header.Get("Authorization") != "Bearer access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":"42","email":"ada@example.com","name":"Ada","picture":"http://img"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer provider.Close()

	userSvc := users.NewService(users.NewMemoryRepo())
	svc, issuer := newTestService(t, userSvc)
	svc.oauthConfig.Endpoint = oauth2.Endpoint{
		AuthURL:   provider.URL + "/auth",
		TokenURL:  provider.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	svc.userInfoURL = provider.URL + "/userinfo"
	svc.stateStore.put("state-1", time.Now().Add(time.Minute))

	resp := httptest.NewRecorder()
	newAuthRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=state-1&code=abc", nil))

	require.Equal(t, http.StatusFound, resp.Code)
	loc, err := url.Parse(resp.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)

	claims, err := issuer.Verify(loc.Query().Get("token"))
	require.NoError(t, err)
	assert.Equal(t, "google:42", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)

	stored, err := userSvc.GetByID(context.Background(), "google:42")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://localhost:5173/login?next=%2Fresume", "abc")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/login?next=%2Fresume&token=abc", got)

	_, err = appendToken("", "abc")
	assert.Error(t, err)
}

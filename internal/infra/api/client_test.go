package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodies/config"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	token string
	user  *entity.User
}

func (s *fakeSession) Token(context.Context) (string, bool) {
	return s.token, s.token != ""
}

func (s *fakeSession) CurrentUser(context.Context) (*entity.User, bool) {
	return s.user, s.user != nil
}

func (s *fakeSession) SaveSession(_ context.Context, token string, user *entity.User) error {
	s.token, s.user = token, user

	return nil
}

func (s *fakeSession) ClearSession(context.Context) error {
	s.token, s.user = "", nil

	return nil
}

func newTestClient(baseURL string, session *fakeSession) *Client {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 2 * time.Second

	return NewClient(cfg, session, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"code":200,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeSession{token: "tok-1"})
	gw := NewCatalogGateway(client)

	_, err := gw.ListFoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"code":200,"message":"ok","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeSession{})
	_, err := NewCatalogGateway(client).ListFoods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_DecodesEnvelopePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"code":200,"message":"ok","data":{"id":"1","name":"Chicken Biryani","price":299}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeSession{})
	food, err := NewCatalogGateway(client).GetFood(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Biryani", food.Name)
	assert.Equal(t, float64(299), food.Price)
}

func TestClient_NormalizesErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"code":404,"message":"Food item not found","error":{"code":"FOOD_NOT_FOUND","details":""}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeSession{})
	_, err := NewCatalogGateway(client).GetFood(context.Background(), "99")
	require.Error(t, err)

	var httpErr *domainerrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.HTTPCode())
	assert.Equal(t, "Food item not found", httpErr.Message())
	// An error status is not a connectivity failure.
	assert.False(t, errors.Is(err, domainerrors.ErrNetworkUnavailable))
}

func TestClient_Unauthorized_SurfacedNotHandled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"code":401,"message":"Invalid or expired token"}`))
	}))
	defer server.Close()

	session := &fakeSession{token: "expired"}
	client := newTestClient(server.URL, session)
	_, err := NewCartGateway(client).GetCart(context.Background())

	var httpErr *domainerrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.HTTPCode())
	// The wrapper never logs the session out on a 401.
	token, ok := session.Token(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "expired", token)
}

func TestClient_TransportFailureIsNetworkUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := newTestClient(server.URL, &fakeSession{})
	_, err := NewCatalogGateway(client).ListFoods(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrNetworkUnavailable))
}

package connector_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/connector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_WithClientCredentialsSendsBearerToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"token-123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	var auth string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer apiSrv.Close()

	client := connector.NewHTTPClient(context.Background(), config.External{
		TokenURL:     tokenSrv.URL,
		ClientID:     "connector",
		ClientSecret: "secret",
		Scopes:       "write",
	})

	resp, err := client.Get(apiSrv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer token-123", auth)
}

func TestNewHTTPClient_WithoutCredentialsIsPlain(t *testing.T) {
	var auth string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer apiSrv.Close()

	client := connector.NewHTTPClient(context.Background(), config.External{})

	resp, err := client.Get(apiSrv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, auth)
}

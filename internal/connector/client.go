package connector

import (
	"context"
	"net/http"
	"strings"

	"github.com/jeffleon2/draftea-connector-service/config"
	"golang.org/x/oauth2/clientcredentials"
)

const userAgent = "draftea-connector/1.0"

// NewHTTPClient returns the client used against the external API. With client
// credentials configured, requests carry a bearer token that is fetched and
// refreshed transparently.
func NewHTTPClient(ctx context.Context, cfg config.External) *http.Client {
	if cfg.TokenURL == "" || cfg.ClientID == "" {
		return &http.Client{}
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       strings.Fields(strings.ReplaceAll(cfg.Scopes, ",", " ")),
	}
	return cc.Client(ctx)
}

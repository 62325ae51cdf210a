package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/TeQuac/Gratulations/internal/config"
)

// VCardFetcher defines the contract for retrieving remote vCard data, so the
// import pipeline can be tested without a network.
type VCardFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher implements VCardFetcher using net/http.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the standard timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// validateSource checks that the address is a well-formed http(s) URL and
// returns a log-safe form with the query stripped, since CardDAV export
// links tend to carry access tokens there.
func validateSource(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return "", fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}
	return u.Scheme + "://" + u.Host + u.Path, nil
}

// Fetch retrieves vCard data from a remote URL with optional basic auth.
// The returned reader caps the body at the configured size limit; closing
// it releases the underlying connection.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	safeURL, err := validateSource(targetURL)
	if err != nil {
		return nil, err
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug("Requesting vCard source")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching vcards: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn("vCard source rejected the request",
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("vcard source answered %d %s", resp.StatusCode, resp.Status)
	}

	log.Info("vCard download started",
		slog.Int64("content_length", resp.ContentLength),
	)
	return &cappedBody{
		r: io.LimitReader(resp.Body, config.MaxHTTPResponseSize),
		c: resp.Body,
	}, nil
}

// cappedBody bounds reads on a response body while keeping the original
// closer, so Close still releases the connection.
type cappedBody struct {
	r io.Reader
	c io.Closer
}

func (b *cappedBody) Read(p []byte) (n int, err error) {
	return b.r.Read(p)
}

func (b *cappedBody) Close() error {
	return b.c.Close()
}

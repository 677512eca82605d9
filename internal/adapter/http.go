package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/models"
)

// ClientConfig configures a RouteClient. When Secret is set every request
// is signed with it; otherwise Token, if any, is sent as a bearer token.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// Issuer is appended to signatures so the server picks the right secret.
	// Empty means the server's default issuer.
	Issuer string
	Secret string

	Token string
}

// Response is what Call hands back.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

type httpRouteClient struct {
	client *resty.Client
	cfg    ClientConfig
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPRouteClient constructs the resty based [RouteClient].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPRouteClient(cfg ClientConfig, logger *logger.Logger) (RouteClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := &httpRouteClient{cfg: cfg, now: time.Now, logger: logger}
	c.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		OnBeforeRequest(c.authorize)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authorize signs each request right before it is sent, so retries and slow
// callers never reuse a stale timestamp.
func (c *httpRouteClient) authorize(_ *resty.Client, req *resty.Request) error {
	switch {
	case c.cfg.Secret != "":
		params := service.Sign(c.cfg.Secret, c.now())
		params.Issuer = c.cfg.Issuer
		req.SetHeader("Authorization", params.Header())
	case c.cfg.Token != "":
		req.SetAuthToken(c.cfg.Token)
	}
	return nil
}

func (c *httpRouteClient) Call(ctx context.Context, method, path string, body any) (*Response, error) {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	c.logger.Debug().Str("func", "*httpRouteClient.Call").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Send()

	return &Response{
		Status: resp.StatusCode(),
		Header: resp.Header(),
		Body:   resp.Body(),
	}, mapHTTPError(resp)
}

func (c *httpRouteClient) SetSecret(ctx context.Context, issuer, value string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("issuer", issuer).
		SetBody(models.SetSecretRequest{Value: value}).
		Put("/auth/secrets/{issuer}")
	if err != nil {
		return fmt.Errorf("set secret request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpRouteClient) IssueKey(ctx context.Context, issueReq models.IssueRequest) (models.IssuedKey, error) {
	var key models.IssuedKey

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(issueReq).
		SetResult(&key).
		Post("/auth/keys")
	if err != nil {
		return models.IssuedKey{}, fmt.Errorf("issue key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IssuedKey{}, err
	}

	return key, nil
}

func (c *httpRouteClient) Health(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get("/healthcheck")
	if err != nil {
		return fmt.Errorf("healthcheck request: %w", err)
	}
	return mapHTTPError(resp)
}

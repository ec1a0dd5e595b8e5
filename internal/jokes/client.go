package jokes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// BaseURL is the icanhazdadjoke.com API base URL.
	BaseURL = "https://icanhazdadjoke.com"

	// UserAgent identifies the bot to the provider, as its API guidelines ask.
	UserAgent = "DadJokes Discord Bot (https://github.com/pratyush0898/DadJokes-discord-bot.git)"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultSearchLimit is used when a search is issued without a limit.
	DefaultSearchLimit = 10

	// MaxSearchLimit is the largest page size the provider accepts.
	MaxSearchLimit = 30

	apiPathByID   = "/j/"
	apiPathSearch = "/search"

	tracerName = "github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

var tracer = otel.Tracer(tracerName)

// Client is an HTTP client for the joke provider. It holds no state between
// calls and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new joke provider client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		userAgent:  UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the provider URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClampSearchLimit bounds a requested search limit to what the provider allows.
func ClampSearchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

// getJSON performs a GET request and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, span trace.Span, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrInvalidResponse, path, err)
	}
	return nil
}

// startSpan opens a span for one provider call.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// checkJoke validates a decoded joke body. The provider echoes an error status
// inside the JSON body for some failures even when the HTTP status is 200.
func checkJoke(j *Joke, path string) error {
	if j.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if j.Status >= 400 {
		return &APIError{StatusCode: j.Status, Path: path}
	}
	if j.ID == "" || j.Joke == "" {
		return fmt.Errorf("%w: empty joke from %s", ErrInvalidResponse, path)
	}
	return nil
}

// Random fetches a random joke.
func (c *Client) Random(ctx context.Context) (joke *Joke, err error) {
	ctx, span := startSpan(ctx, "jokes.random")
	defer func() { endSpan(span, err) }()

	var j Joke
	if err := c.getJSON(ctx, span, "/", nil, &j); err != nil {
		return nil, err
	}
	if err := checkJoke(&j, "/"); err != nil {
		return nil, err
	}
	return &j, nil
}

// ByID fetches the joke with the given ID. An unknown ID yields ErrNotFound.
func (c *Client) ByID(ctx context.Context, id string) (joke *Joke, err error) {
	ctx, span := startSpan(ctx, "jokes.by_id", attribute.String("joke.id", id))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	path := apiPathByID + url.PathEscape(id)
	var j Joke
	if err := c.getJSON(ctx, span, path, nil, &j); err != nil {
		return nil, err
	}
	if err := checkJoke(&j, path); err != nil {
		return nil, err
	}
	return &j, nil
}

// Search searches jokes by term. The limit is clamped to MaxSearchLimit before
// the request is sent, whatever the caller asked for.
func (c *Client) Search(ctx context.Context, term string, limit int) (result *SearchResult, err error) {
	limit = ClampSearchLimit(limit)
	ctx, span := startSpan(ctx, "jokes.search",
		attribute.String("jokes.search.term", term),
		attribute.Int("jokes.search.limit", limit))
	defer func() { endSpan(span, err) }()

	query := url.Values{}
	query.Set("term", term)
	query.Set("limit", strconv.Itoa(limit))

	var r SearchResult
	if err := c.getJSON(ctx, span, apiPathSearch, query, &r); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("jokes.search.total", r.TotalJokes))
	return &r, nil
}

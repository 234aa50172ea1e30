package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// ErrNotConnected is returned by operations invoked before [Client.Connect].
var ErrNotConnected = errors.New("client not connected - call Connect() first")

// Client sends requests to a Mojaloop ledger or settlement service. Create
// it with [New] and call [Client.Connect] before use. A Client is safe for
// concurrent use.
type Client struct {
	baseURL string
	options *Options

	mu     sync.Mutex
	client *resty.Client
}

// NoContent is the payload of operations whose success response has no
// meaningful body.
type NoContent struct{}

// New creates a client for the service at baseURL. Invalid option values are
// ignored; the resulting configuration is validated by [Client.Connect].
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		options: options,
	}
}

// Connect validates the configuration and prepares the HTTP transport. It
// performs no network I/O; calling it more than once is a no-op.
func (c *Client) Connect(_ context.Context) error {
	if c == nil {
		return errors.New("mojaloop client is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	var rc *resty.Client
	if c.options.httpClient != nil {
		rc = resty.NewWithClient(c.options.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(c.baseURL).
		SetHeaders(c.options.requestHeaders).
		SetLogger(c.options.requestLogger).
		SetRetryCount(0)

	if c.options.timeout > 0 {
		rc.SetTimeout(c.options.timeout)
	}

	if c.options.basicAuthUsername != "" {
		rc.SetBasicAuth(c.options.basicAuthUsername, c.options.basicAuthPassword)
	}

	if c.options.authToken != "" {
		if c.options.authScheme != "" {
			rc.SetAuthScheme(c.options.authScheme)
		}
		rc.SetAuthToken(c.options.authToken)
	}

	logger := c.options.requestLogger

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		logger.Debugf("mojaloop request %s %s", r.Method, r.URL)
		return nil
	})

	rc.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		if !r.IsSuccess() {
			logger.Warnf("mojaloop request %s %s returned %d", r.Request.Method, r.Request.URL, r.StatusCode())
		}
		return nil
	})

	rc.OnError(func(r *resty.Request, err error) {
		logger.Errorf("mojaloop request %s %s failed: %v", r.Method, r.URL, err)
	})

	c.client = rc

	return nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		c.client.GetClient().CloseIdleConnections()
	}
}

type requestSpec struct {
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       any
}

func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	if c == nil {
		return nil, errors.New("mojaloop client is nil")
	}

	c.mu.Lock()
	rc := c.client
	c.mu.Unlock()

	if rc == nil {
		return nil, ErrNotConnected
	}

	return rc.R().SetContext(ctx), nil
}

// send issues exactly one request. Transport errors are returned unchanged.
func (c *Client) send(ctx context.Context, spec requestSpec) (*resty.Response, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	if len(spec.pathParams) > 0 {
		req.SetPathParams(spec.pathParams)
	}

	if len(spec.query) > 0 {
		req.SetQueryParams(spec.query)
	}

	if spec.body != nil {
		req.SetBody(spec.body)
	}

	return req.Execute(spec.method, spec.path)
}

func call[T any](ctx context.Context, c *Client, spec requestSpec, opts []CallOption) (Result[T], error) {
	callOpts := ResolveCallOptions(opts...)

	resp, err := c.send(ctx, spec)
	if err != nil {
		return Result[T]{}, err
	}

	return normalize[T](resp.StatusCode(), resp.Body(), callOpts.ThrowOnError)
}

func callList[E any](ctx context.Context, c *Client, spec requestSpec, opts []CallOption) (Result[[]E], error) {
	callOpts := ResolveCallOptions(opts...)

	resp, err := c.send(ctx, spec)
	if err != nil {
		return Result[[]E]{}, err
	}

	return normalizeList[E](resp.StatusCode(), resp.Body(), callOpts.ThrowOnError)
}

// Health queries the service health endpoint.
func (c *Client) Health(ctx context.Context, opts ...CallOption) (Result[HealthStatus], error) {
	return call[HealthStatus](ctx, c, requestSpec{method: http.MethodGet, path: "/health"}, opts)
}

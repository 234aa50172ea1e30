package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const maxTimeout = 5 * time.Minute

type Option func(*Options)

type Options struct {
	timeout           time.Duration
	httpClient        *http.Client
	requestLogger     RequestLogger
	requestHeaders    map[string]string
	basicAuthUsername string
	basicAuthPassword string
	authScheme        string
	authToken         string
}

func newClientOptions() *Options {
	return &Options{
		timeout:       30 * time.Second,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithTimeout sets the transport timeout applied to each request. A zero
// value disables the timeout; negative values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets the underlying [http.Client] used by the transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.basicAuthUsername = username
		o.basicAuthPassword = password
	}
}

func WithAuthScheme(scheme string) Option {
	return func(o *Options) {
		o.authScheme = scheme
	}
}

func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// Validate checks the options for consistency. It is called by
// [Client.Connect].
func (o *Options) Validate() error {
	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > maxTimeout {
		return fmt.Errorf("timeout must not exceed %s", maxTimeout)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.basicAuthUsername != "" && o.authToken != "" {
		return errors.New("cannot use both basic auth and token auth - choose one")
	}

	return nil
}

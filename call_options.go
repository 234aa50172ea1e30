package client

// CallOption configures a single operation on [Client].
type CallOption func(*CallOptions)

// CallOptions is the fully resolved per-call configuration.
type CallOptions struct {
	// ThrowOnError selects how Mojaloop error responses are surfaced. When
	// true (the default) they are returned as an [*APIError]; when false they
	// are returned as a [Result] of kind [KindMojaloopError] with a nil error.
	ThrowOnError bool
}

// DefaultCallOptions returns the configuration used when no [CallOption] is
// supplied.
func DefaultCallOptions() CallOptions {
	return CallOptions{
		ThrowOnError: true,
	}
}

// WithThrowOnError overrides [CallOptions.ThrowOnError] for one call.
func WithThrowOnError(throwOnError bool) CallOption {
	return func(o *CallOptions) {
		o.ThrowOnError = throwOnError
	}
}

// ResolveCallOptions applies opts over [DefaultCallOptions]. Nil options are
// skipped.
func ResolveCallOptions(opts ...CallOption) CallOptions {
	resolved := DefaultCallOptions()

	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}

	return resolved
}

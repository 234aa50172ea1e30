// Package client provides an HTTP client for the Mojaloop central ledger and
// central settlement APIs.
//
// The client wraps [github.com/go-resty/resty/v2]. Every operation sends
// exactly one request; nothing is retried, batched or cached.
//
// # Basic Usage
//
//	c := client.New("http://central-settlement.local",
//	    client.WithAuthToken("my-token"),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.GetSettlement(ctx, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Body.State)
//
// # Results and Errors
//
// Operations return a [Result] and an error. How Mojaloop error responses
// (any status outside 2xx) are surfaced depends on [CallOptions.ThrowOnError]:
//
//   - true, the default: the error is an [*APIError] carrying the error
//     payload, and a successful Result always has kind [KindOkay].
//   - false, selected with WithThrowOnError(false): the error is nil and the
//     Result has kind [KindMojaloopError] with the payload in Result.Error.
//
// Invalid input (see [ErrValidation]), undecodable bodies (see [ErrDecode])
// and transport failures are always returned as errors, whatever the mode.
//
// The settlement and settlement window listings report a 400 response that
// carries errorInformation as an empty list. The settlement service answers
// queries with no matches that way.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
//
// # Authentication
//
// Token-based authentication is configured with [WithAuthToken] (and
// optionally [WithAuthScheme]). HTTP Basic authentication is configured
// with [WithBasicAuth]. The two methods are mutually exclusive.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger]. The
// default [NoopLogger] discards all log output.
package client

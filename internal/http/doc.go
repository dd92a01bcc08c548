// Package http is a thin convenience layer over the platform HTTP client:
// builders for authorization headers, header maps and outgoing URLs, an
// immutable response record, and a verb-per-method service that issues a
// single blocking exchange and packages the result.
//
// This package is designed for programmatic use and provides:
//   - Authorization with basic/bearer/digest/oauth/oauth2/custom renderers
//   - Fluent HeaderBuilder and URLBuilder helpers
//   - An immutable Response assembled through ResponseBuilder and
//     ResponseFactory, with wall-clock timing of the exchange
//   - A Service with one operation per HTTP verb
//
// Basic Usage:
//
//	service := http.NewService()
//
//	headers := http.NewHeaderBuilder().
//	    Add("Accept", "application/json").
//	    Build()
//
//	resp, err := service.Get(context.Background(), "https://api.example.com/users/1", headers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.Status())
//	fmt.Printf("Duration: %.3fs\n", resp.Duration())
//
// Authorization Example:
//
//	auth := http.NewAuthorization("louis", "s3cret")
//	header, err := auth.Header(http.SchemeBearer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := service.Get(context.Background(), url, header)
//
// Error Handling:
//
// A verb call either yields a fully populated Response or fails. A non-2xx
// status fails with *StatusError before the body is read; transport
// failures propagate unchanged; nothing is retried or logged internally.
//
// Thread Safety:
//
// Service and Authorization are safe for concurrent use. The builders are
// plain accumulators and must not be mutated from multiple goroutines.
package http

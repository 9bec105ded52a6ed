// Package transport owns the HTTP session with the CurseForge API.
//
// A Client injects the x-api-key header into every request, builds endpoint
// URLs with the trailing slash the API expects and returns response bodies
// as generic JSON values for the schema layer to decode:
//
//	c := transport.New(apiKey,
//		transport.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//		transport.WithLogger(logger),
//	)
//	raw, err := c.Get(ctx, "v1/games", map[string]any{"pageSize": 10})
//
// Non-2xx responses are returned as *apierr.UpstreamError before any decoding
// happens, and network failures as *apierr.TransportError. Nothing is retried.
//
// The endpoint groups in api/v1 and api/v2 depend on the Requester interface
// only, so tests and embedding applications can substitute their own.
package transport

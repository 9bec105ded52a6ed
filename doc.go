// Package cfapi is a typed client for the CurseForge REST API.
//
// # Architecture
//
//   - transport: the authenticated HTTP session (x-api-key header, URL rules,
//     status handling) behind the Requester interface
//   - api/v1, api/v2: one method per documented endpoint
//   - schema: wire records, closed enumerations and the strict decoder
//   - apierr: the error types every layer returns
//   - config: YAML settings for NewFromConfig
//
// # Usage
//
//	client, err := cfapi.NewClient(os.Getenv("CURSEFORGE_API_KEY"),
//		transport.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := client.V1.GetGame(ctx, 432)
//
//	mods, err := client.V1.SearchMods(ctx, 432, &v1.SearchModsOptions{
//		SearchFilter: schema.Ptr("jei"),
//		SortField:    schema.Ptr(schema.SortFieldPopularity),
//		Page:         v1.Page{PageSize: schema.Ptr(10)},
//	})
//
// Optional parameters are pointer fields of an options struct; a nil options
// value or a nil field leaves the parameter out of the request so the API
// applies its own default.
//
// # Error Handling
//
// Every endpoint error is an *apierr.OperationError naming the operation and
// path. Inside it:
//
//   - *apierr.TransportError: the request never got a response
//   - *apierr.UpstreamError: the API answered with a non-2xx status
//   - *apierr.SchemaValidationError: the body did not match the record
//   - apierr.ErrInvalidRequest: arguments broke a documented limit, nothing was sent
//
// Nothing is retried and no response is cached.
package cfapi

// Package client provides a Go SDK for the OGC API Processes read endpoints.
//
// A Client is bound to one server. It lists processes, fetches full process
// descriptions and reads the server's declared conformance classes:
//
//	c := client.New("https://example.org/pygeoapi")
//	processes, err := c.ListProcesses(ctx, "")
//	desc, err := c.GetProcess(ctx, processes[0].ID)
//	conf, err := c.GetConformance(ctx)
//
// Use custom configuration:
//
//	c := client.New(baseURL,
//	    client.WithTimeout(30*time.Second),
//	    client.WithUserAgent("my-tool/1.0"),
//	)
//
// # Ordering
//
// Process descriptions key their inputs and outputs by name in a JSON object.
// The order of those members matters to the generated tool form, so InputList
// and OutputList decode them in document order instead of through a Go map.
// The array form of older servers (each element carrying an "id") is accepted
// as well.
//
// # Schemas
//
// Input and output schemas are kept as json.RawMessage. They come in many
// shapes (plain types, enums, oneOf alternatives, $ref fragments, media-typed
// binaries) and are interpreted by the tool generator, not by this package.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. The message is taken from the
// RFC 7807 problem document when the server sends one.
package client

// Package log provides the logging abstraction used by apiclient.
//
// A zerolog-backed adapter and a no-op logger are included. Both also satisfy
// resty's printf-style logger, so the HTTP transport reports through the same
// sink:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	c := client.New(client.ConfigFromEnv(), client.WithLogger(logger))
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log

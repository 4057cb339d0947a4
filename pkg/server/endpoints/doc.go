// Package endpoints implements the Pressroom REST API handlers.
//
// Each file registers a group of routes on the server via a
// RegisterXEndpoints function. Handlers are closures over the store
// interfaces they need, which keeps them testable with mock stores.
//
// Response payloads use the compact {"msg": ...} convention throughout.
package endpoints

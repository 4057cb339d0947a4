// Package server provides the HTTP server for the Pressroom API.
//
// This package implements the core HTTP server that handles all Pressroom
// REST API requests. It uses gorilla/mux for routing and provides middleware
// for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, accounts, articles, health, tokens, auditLogger, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Accounts, Articles, Health: storage interfaces
//   - Tokens: session token issuer and verifier
//   - Guard: authorization middleware (authentication, role, ownership)
//   - Audit: RFC5424 security audit logger
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all Pressroom API endpoints including:
//
//   - /api/register - reporter self-registration
//   - /api/login - credential and license-key authentication
//   - /api/admin/... - approval workflow (admin gated)
//   - /api/news... - article publication and retrieval
//   - / - status page
package server

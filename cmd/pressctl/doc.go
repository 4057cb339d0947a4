// Package pressctl is the command line interface for the Pressroom server.
//
// Pressroom is a small news-publishing backend: reporters register and wait
// for an administrator to approve them, approved reporters receive a press
// license key and can publish articles, and administrators manage the
// approval lifecycle.
//
// # Quick Start
//
// The server is run via the pressctl CLI:
//
//	# Generate a token-signing secret
//	export PRESSROOM_TOKEN_SECRET="$(pressctl token-secret generate)"
//
//	# Run database migrations
//	pressctl db migrate
//
//	# Create an administrator account
//	pressctl account create-admin --email admin@example.com
//
//	# Start the server
//	pressctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PRESSROOM_TOKEN_SECRET: HMAC secret used to sign session tokens
//   - PRESSROOM_TOKEN_TTL: session token validity window (default: 24h)
//   - PRESSROOM_CONFIG_DIR: directory holding pressroom.yml (default: /etc/pressroom)
//   - PRESSROOM_LOG_LEVEL: log level (debug enables SQL query logging)
//   - BIND_ADDRESS: server bind address (default: 0.0.0.0)
//   - PORT: server port (default: 8000)
package main

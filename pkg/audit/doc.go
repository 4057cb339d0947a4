// Package audit provides audit logging for Pressroom operations.
//
// This package implements structured audit logging for security-relevant
// operations such as registrations, login attempts, license approvals and
// revocations, and article publication and deletion.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Registration events (success/failure)
//   - Authentication events (success/failure)
//   - Approval and revocation events
//   - Article publish and delete events
//
// # Usage
//
//	logger := audit.NewLogger(os.Stdout)
//	logger.Log(audit.AuthenticateEvent{Email: email, Success: true})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements.
package audit

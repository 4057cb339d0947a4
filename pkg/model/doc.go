// Package model defines the database models for Pressroom.
//
// This package contains GORM models that map to the Pressroom PostgreSQL
// schema.
//
// # Core Models
//
//   - Account: reporter and administrator identities, including the
//     approval state and license key for reporters
//   - Article: published news articles, owned by the reporter account
//     that created them
//
// # Database Schema
//
// The database uses PostgreSQL with two tables:
//
//   - accounts: all identities; email and license_key carry unique
//     constraints enforced by the database
//   - articles: published content; owner_id references accounts.id but is
//     deliberately not a cascading foreign key (articles survive their
//     owner's revocation)
package model

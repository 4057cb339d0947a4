// Package store provides storage abstractions for the Pressroom server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - AccountsStore: Account registration, lookup, approval and revocation
//   - ArticlesStore: Article publication, listing and deletion
//   - HealthStore: Database connectivity checks
//
// # Usage
//
//	accounts := gorm.NewAccountsStore(db, nil)
//	account, err := accounts.ByEmail("alice@example.com")
//	if err != nil {
//	    if errors.Is(err, store.ErrAccountNotFound) {
//	        // Handle not found
//	    }
//	}
package store

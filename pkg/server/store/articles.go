package store

import (
	"errors"

	"github.com/pressroom/pressroom/pkg/model"
)

// ErrArticleNotFound is returned when an article doesn't exist
var ErrArticleNotFound = errors.New("article not found")

// ArticlesStore abstracts article storage operations
type ArticlesStore interface {
	// Create persists a new article and fills in its id and timestamps.
	Create(article *model.Article) error

	// ByID retrieves an article by id.
	// Returns ErrArticleNotFound if no article matches.
	ByID(id int64) (*model.Article, error)

	// List returns all articles, newest first.
	List() ([]model.Article, error)

	// ListByOwner returns all articles published by the given account,
	// newest first.
	ListByOwner(ownerID int64) ([]model.Article, error)

	// OwnerOf returns the id of the account that published an article.
	// Returns ErrArticleNotFound if no article matches.
	OwnerOf(id int64) (int64, error)

	// Delete removes an article.
	// Returns ErrArticleNotFound if no article matches.
	Delete(id int64) error
}

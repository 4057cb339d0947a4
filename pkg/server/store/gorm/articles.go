package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

// Ensure ArticlesStore implements store.ArticlesStore
var _ store.ArticlesStore = (*ArticlesStore)(nil)

// ArticlesStore implements store.ArticlesStore using GORM
type ArticlesStore struct {
	db *gorm.DB
}

// NewArticlesStore creates a new ArticlesStore
func NewArticlesStore(db *gorm.DB) *ArticlesStore {
	return &ArticlesStore{db: db}
}

// Create persists a new article and fills in its id and timestamps.
func (s *ArticlesStore) Create(article *model.Article) error {
	return s.db.Create(article).Error
}

// ByID retrieves an article by id.
func (s *ArticlesStore) ByID(id int64) (*model.Article, error) {
	var article model.Article
	tx := s.db.First(&article, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrArticleNotFound
		}
		return nil, tx.Error
	}
	return &article, nil
}

// List returns all articles, newest first.
func (s *ArticlesStore) List() ([]model.Article, error) {
	var articles []model.Article
	tx := s.db.Order("created_at desc").Find(&articles)
	return articles, tx.Error
}

// ListByOwner returns all articles published by the given account, newest
// first.
func (s *ArticlesStore) ListByOwner(ownerID int64) ([]model.Article, error) {
	var articles []model.Article
	tx := s.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&articles)
	return articles, tx.Error
}

// OwnerOf returns the id of the account that published an article.
func (s *ArticlesStore) OwnerOf(id int64) (int64, error) {
	article, err := s.ByID(id)
	if err != nil {
		return 0, err
	}
	return article.OwnerID, nil
}

// Delete removes an article.
func (s *ArticlesStore) Delete(id int64) error {
	tx := s.db.Delete(&model.Article{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrArticleNotFound
	}
	return nil
}

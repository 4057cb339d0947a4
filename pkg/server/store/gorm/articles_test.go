package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

func TestCreateArticle(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "articles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	article := &model.Article{
		Title:   "Flood warning lifted",
		Content: "The river has receded below the danger mark.",
		OwnerID: 7,
	}
	require.NoError(t, articles.Create(article))
	assert.Equal(t, int64(3), article.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleByID(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT \* FROM "articles"`).
		WillReturnRows(articleRows(model.Article{
			ID:      3,
			Title:   "Flood warning lifted",
			Content: "The river has receded below the danger mark.",
			OwnerID: 7,
		}))

	article, err := articles.ByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Flood warning lifted", article.Title)
	assert.Equal(t, int64(7), article.OwnerID)
}

func TestArticleByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT \* FROM "articles"`).
		WillReturnRows(articleRows())

	_, err := articles.ByID(99)
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
}

func TestListNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "articles" ORDER BY created_at desc`).
		WillReturnRows(articleRows(
			model.Article{ID: 2, Title: "Later", OwnerID: 7, CreatedAt: now},
			model.Article{ID: 1, Title: "Earlier", OwnerID: 7, CreatedAt: now.Add(-time.Hour)},
		))

	list, err := articles.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Later", list[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT \* FROM "articles" WHERE owner_id =`).
		WithArgs(int64(7)).
		WillReturnRows(articleRows(model.Article{ID: 1, Title: "One", OwnerID: 7}))

	list, err := articles.ListByOwner(7)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerOf(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT \* FROM "articles"`).
		WillReturnRows(articleRows(model.Article{ID: 3, Title: "One", OwnerID: 7}))

	ownerID, err := articles.OwnerOf(3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ownerID)
}

func TestDeleteArticle(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "articles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, articles.Delete(3))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticleNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	articles := NewArticlesStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "articles"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := articles.Delete(99)
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
}

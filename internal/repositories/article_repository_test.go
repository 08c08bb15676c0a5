package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewArticleRepo(db)
	ctx := t.Context()
	now := time.Now()

	columns := []string{"id", "title", "slug", "content", "is_published", "created_at", "updated_at"}

	t.Run("CreateArticle", func(t *testing.T) {
		insertSQL := regexp.QuoteMeta(`INSERT INTO articles (title, slug, content, is_published)`)
		article := &models.Article{Title: "How to activate", Slug: "how-to-activate", Content: "<p>Steps</p>", IsPublished: true}

		mock.ExpectQuery(insertSQL).
			WithArgs("How to activate", "how-to-activate", "<p>Steps</p>", true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("a1", now, now))

		require.NoError(t, repo.CreateArticle(ctx, article))
		assert.Equal(t, "a1", article.ID)

		mock.ExpectQuery(insertSQL).WillReturnError(&pq.Error{Code: "23505"})

		assert.ErrorIs(t, repo.CreateArticle(ctx, article), repository.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetArticleBySlug", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM articles WHERE slug = $1`)).
			WithArgs("how-to-activate").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("a1", "How to activate", "how-to-activate", "<p>Steps</p>", true, now, now))

		article, err := repo.GetArticleBySlug(ctx, "how-to-activate")

		require.NoError(t, err)
		assert.Equal(t, "a1", article.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetArticleByID - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM articles WHERE id = $1`)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		article, err := repo.GetArticleByID(ctx, "missing")

		assert.Nil(t, article)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateArticle", func(t *testing.T) {
		article := &models.Article{ID: "a1", Title: "New", Slug: "new", Content: "<p>x</p>"}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE articles SET title = $1`)).
			WithArgs("New", "new", "<p>x</p>", false, "a1").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		require.NoError(t, repo.UpdateArticle(ctx, article))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteArticle", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM articles WHERE id = $1`)).
			WithArgs("a1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteArticle(ctx, "a1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListArticles - Published only", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM articles WHERE (NOT $1 OR is_published)`)).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
			WithArgs(true, 10, 10).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("a1", "How to activate", "how-to-activate", "<p>Steps</p>", true, now, now))

		articles, total, err := repo.ListArticles(ctx, true, 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, articles, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// ArticleRepository encapsulates knowledge base reads and counter updates.
type ArticleRepository interface {
	ListMostViewedFirst(ctx context.Context) ([]domain.Article, error)
	GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error)
	IncrementViews(ctx context.Context, articleID string) error
	IncrementHelpful(ctx context.Context, articleID string) error
}

type articleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository instantiates repository.
func NewArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &articleRepository{pool: pool}
}

func (r *articleRepository) ListMostViewedFirst(ctx context.Context) ([]domain.Article, error) {
	const query = `
        SELECT id, article_id, title, category, content, keywords, views, helpful_count, created_at, updated_at
        FROM knowledge_base ORDER BY views DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ID,
			&article.ArticleID,
			&article.Title,
			&article.Category,
			&article.Content,
			&article.Keywords,
			&article.Views,
			&article.HelpfulCount,
			&article.CreatedAt,
			&article.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}

func (r *articleRepository) GetByArticleID(ctx context.Context, articleID string) (*domain.Article, error) {
	const query = `
        SELECT id, article_id, title, category, content, keywords, views, helpful_count, created_at, updated_at
        FROM knowledge_base WHERE article_id=$1`
	var article domain.Article
	if err := r.pool.QueryRow(ctx, query, articleID).Scan(
		&article.ID,
		&article.ArticleID,
		&article.Title,
		&article.Category,
		&article.Content,
		&article.Keywords,
		&article.Views,
		&article.HelpfulCount,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) IncrementViews(ctx context.Context, articleID string) error {
	const query = `UPDATE knowledge_base SET views = views + 1 WHERE article_id=$1`
	cmd, err := r.pool.Exec(ctx, query, articleID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *articleRepository) IncrementHelpful(ctx context.Context, articleID string) error {
	const query = `UPDATE knowledge_base SET helpful_count = helpful_count + 1 WHERE article_id=$1`
	cmd, err := r.pool.Exec(ctx, query, articleID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util"
)

// KnowledgeService serves knowledge base reads. The core never creates or
// deletes articles; it only reads them and bumps their counters.
type KnowledgeService struct {
	articles repository.ArticleRepository
}

// NewKnowledgeService constructs the service.
func NewKnowledgeService(articles repository.ArticleRepository) *KnowledgeService {
	return &KnowledgeService{articles: articles}
}

// ListArticles returns all articles, most viewed first.
func (s *KnowledgeService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articles.ListMostViewedFirst(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return articles, nil
}

// GetArticle fetches an article and increments its view counter. The read
// reflects the count before this view.
func (s *KnowledgeService) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articles.GetByArticleID(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("article", map[string]any{"article_id": articleID})
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.articles.IncrementViews(ctx, articleID); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return article, nil
}

// MarkHelpful increments an article's helpful counter.
func (s *KnowledgeService) MarkHelpful(ctx context.Context, articleID string) error {
	if err := s.articles.IncrementHelpful(ctx, articleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("article", map[string]any{"article_id": articleID})
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

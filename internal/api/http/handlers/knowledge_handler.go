package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/service"
)

// KnowledgeHandler serves knowledge base endpoints.
type KnowledgeHandler struct {
	knowledge *service.KnowledgeService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(knowledge *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledge}
}

// ListArticles GET /knowledge-base.
func (h *KnowledgeHandler) ListArticles(c *fiber.Ctx) error {
	articles, err := h.knowledge.ListArticles(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, articleResponse(&articles[i]))
	}
	return c.JSON(items)
}

// GetArticle GET /knowledge-base/:id.
func (h *KnowledgeHandler) GetArticle(c *fiber.Ctx) error {
	article, err := h.knowledge.GetArticle(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(articleResponse(article))
}

// MarkHelpful POST /knowledge-base/:id/helpful.
func (h *KnowledgeHandler) MarkHelpful(c *fiber.Ctx) error {
	if err := h.knowledge.MarkHelpful(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func articleResponse(article *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:           article.ID,
		ArticleID:    article.ArticleID,
		Title:        article.Title,
		Category:     article.Category,
		Content:      article.Content,
		Keywords:     article.Keywords,
		Views:        article.Views,
		HelpfulCount: article.HelpfulCount,
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
	}
}

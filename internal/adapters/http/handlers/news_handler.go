package handlers

import (
	"fmt"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/slug"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewsHandler handles news article endpoints
type NewsHandler struct {
	newsRepo     *repositories.NewsRepository
	categoryRepo *repositories.CategoryRepository
	userRepo     *repositories.UserRepository
	cfg          *config.Config
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(
	newsRepo *repositories.NewsRepository,
	categoryRepo *repositories.CategoryRepository,
	userRepo *repositories.UserRepository,
	cfg *config.Config,
) *NewsHandler {
	return &NewsHandler{
		newsRepo:     newsRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

var newsFilters = filter.Spec{Fields: []filter.Field{
	{Param: "category", Column: "category_id"},
	{Param: "status", Op: filter.EqUpper, Default: "PUBLISHED"},
	{Param: "priority", Op: filter.EqUpper},
}}

// List lists articles, or fetches one when an id or slug is given.
// Single fetches count as a view.
// @Summary List news
// @Description List news articles with optional filters, or fetch one by id or slug
// @Tags News
// @Produce json
// @Param id query string false "Article ID (single fetch)"
// @Param slug query string false "Article slug (single fetch)"
// @Param category query string false "Category ID"
// @Param status query string false "Article status (default PUBLISHED)"
// @Param priority query string false "Article priority"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		article, err := h.newsRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		return h.respondSingle(c, article)
	}
	if s := c.Query("slug"); s != "" {
		article, err := h.newsRepo.GetBySlug(c.Context(), s)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		return h.respondSingle(c, article)
	}

	articles, total, err := h.newsRepo.List(c.Context(), newsFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "News")
	}
	return response.List(c, articles, total)
}

func (h *NewsHandler) respondSingle(c *fiber.Ctx, article *models.News) error {
	if err := h.newsRepo.IncrementViewCount(c.Context(), article.ID); err == nil {
		article.ViewCount++
	}
	return response.Success(c, "News retrieved successfully", article)
}

// CreateNewsRequest represents create news request
type CreateNewsRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     *string  `json:"excerpt"`
	Content     string   `json:"content"`
	CategoryID  string   `json:"categoryId"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	Image       *string  `json:"image"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"authorId"`
	AuthorEmail string   `json:"authorEmail"`
}

// Create creates a news article
// @Summary Create news
// @Description Create a news article (Admin only)
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateNewsRequest true "Article data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Content == "" {
		missing = append(missing, "content")
	}
	if req.CategoryID == "" {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "News")
	}

	ok, err := h.categoryRepo.Exists(c.Context(), req.CategoryID)
	if err != nil {
		return response.Domain(c, err, "News")
	}
	if !ok {
		return response.Domain(c, domain.BadReference("category"), "News")
	}

	status := "DRAFT"
	if req.Status != "" {
		status, err = domain.NormalizeEnum("news status", req.Status, domain.NewsStatuses)
		if err != nil {
			return response.Domain(c, err, "News")
		}
	}
	priority := "MEDIUM"
	if req.Priority != "" {
		priority, err = domain.NormalizeEnum("news priority", req.Priority, domain.Priorities)
		if err != nil {
			return response.Domain(c, err, "News")
		}
	}

	articleSlug, err := h.uniqueSlug(c, req.Slug, req.Title)
	if err != nil {
		return response.Domain(c, err, "News")
	}

	author, err := resolveAuthor(c, h.userRepo, h.cfg, req.AuthorID, req.AuthorEmail)
	if err != nil {
		return response.Domain(c, err, "News")
	}

	article := &models.News{
		Title:      req.Title,
		Slug:       articleSlug,
		Excerpt:    optionalString(req.Excerpt),
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Priority:   priority,
		Status:     status,
		Image:      optionalString(req.Image),
		AuthorID:   author.ID,
	}
	if status == "PUBLISHED" {
		now := time.Now()
		article.PublishedAt = &now
	}
	if len(req.Tags) > 0 {
		article.Tags = toJSON(req.Tags)
	}

	if err := h.newsRepo.Create(c.Context(), article); err != nil {
		return response.Domain(c, err, "News")
	}

	return response.Created(c, "News created successfully", article)
}

// uniqueSlug takes the client slug when given, otherwise derives one from the
// title. A colliding client slug gets a short random suffix instead of a 400.
func (h *NewsHandler) uniqueSlug(c *fiber.Ctx, given, title string) (string, error) {
	s := given
	if s == "" {
		s = slug.Make(title)
	}
	taken, err := h.newsRepo.SlugExists(c.Context(), s)
	if err != nil {
		return "", err
	}
	if taken {
		s = fmt.Sprintf("%s-%s", s, uuid.NewString()[:8])
	}
	return s, nil
}

// UpdateNewsRequest represents partial update of a news article
type UpdateNewsRequest struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	CategoryID *string   `json:"categoryId"`
	Priority   *string   `json:"priority"`
	Status     *string   `json:"status"`
	Image      *string   `json:"image"`
	Tags       *[]string `json:"tags"`
}

// Update partially updates a news article by id
// @Summary Update news
// @Description Update fields of an existing article (Admin only)
// @Tags News
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Article ID"
// @Param body body UpdateNewsRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news [put]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "News ID is required")
	}

	var req UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	article, err := h.newsRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "News")
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != "" && *req.Slug != article.Slug {
		taken, err := h.newsRepo.SlugExists(c.Context(), *req.Slug)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		if taken {
			return response.Domain(c, domain.Invalid("Slug already in use: %s", *req.Slug), "News")
		}
		article.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		article.Excerpt = optionalString(req.Excerpt)
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		ok, err := h.categoryRepo.Exists(c.Context(), *req.CategoryID)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		if !ok {
			return response.Domain(c, domain.BadReference("category"), "News")
		}
		article.CategoryID = *req.CategoryID
	}
	if req.Priority != nil {
		priority, err := domain.NormalizeEnum("news priority", *req.Priority, domain.Priorities)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		article.Priority = priority
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("news status", *req.Status, domain.NewsStatuses)
		if err != nil {
			return response.Domain(c, err, "News")
		}
		if status == "PUBLISHED" && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
		article.Status = status
	}
	if req.Image != nil {
		article.Image = optionalString(req.Image)
	}
	if req.Tags != nil {
		article.Tags = toJSON(*req.Tags)
	}

	if err := h.newsRepo.Update(c.Context(), article); err != nil {
		return response.Domain(c, err, "News")
	}

	return response.Success(c, "News updated successfully", article)
}

// Delete removes a news article by id
// @Summary Delete news
// @Description Delete an article permanently (Admin only)
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param id query string true "Article ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "News ID is required")
	}

	if err := h.newsRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "News")
	}

	return response.Success(c, "News deleted successfully", nil)
}

package handlers

import (
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityRepo *repositories.ActivityRepository
	projectRepo  *repositories.ProjectRepository
	categoryRepo *repositories.CategoryRepository
	userRepo     *repositories.UserRepository
	cfg          *config.Config
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(
	activityRepo *repositories.ActivityRepository,
	projectRepo *repositories.ProjectRepository,
	categoryRepo *repositories.CategoryRepository,
	userRepo *repositories.UserRepository,
	cfg *config.Config,
) *ActivityHandler {
	return &ActivityHandler{
		activityRepo: activityRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

// Columns are table-qualified because the category filter joins categories
var activityFilters = filter.Spec{Fields: []filter.Field{
	{Param: "category", Column: "categories.slug", Op: filter.EqFold,
		Join: "LEFT JOIN categories ON categories.id = activities.category_id"},
	{Param: "type", Column: "activities.type", Op: filter.EqUpper},
	{Param: "status", Column: "activities.status", Op: filter.EqUpper},
	{Param: "isPublic", Column: "activities.is_public", Op: filter.EqBool, Default: "true"},
	{Param: "projectId", Column: "activities.project_id"},
}}

// List lists activities, or fetches one when an id is given
// @Summary List activities
// @Description List activities with optional filters, or fetch one by id
// @Tags Activities
// @Produce json
// @Param id query string false "Activity ID (single fetch)"
// @Param category query string false "Category slug"
// @Param type query string false "Activity type"
// @Param status query string false "Activity status"
// @Param isPublic query bool false "Public visibility (default true)"
// @Param projectId query string false "Parent project ID"
// @Param upcoming query bool false "Only upcoming activities"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		return h.getByID(c, id)
	}

	upcoming := c.Query("upcoming") == "true"
	scope := func(q *gorm.DB) *gorm.DB {
		q = activityFilters.Apply(q, c.Query)
		if upcoming {
			// Kept verbatim from the admin UI contract: upcoming implies the
			// PUBLISHED status even though the status enum never produces it
			q = q.Where("activities.start_date >= ? AND activities.status = ?", time.Now(), "PUBLISHED")
		}
		return q
	}

	activities, total, err := h.activityRepo.List(c.Context(), scope, listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Activities")
	}
	return response.List(c, activities, total)
}

func (h *ActivityHandler) getByID(c *fiber.Ctx, id string) error {
	activity, err := h.activityRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}
	return response.Success(c, "Activity retrieved successfully", activity)
}

// CreateActivityRequest represents create activity request
type CreateActivityRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	StartDate       string   `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	Location        *string  `json:"location"`
	IsPublic        *bool    `json:"isPublic"`
	Image           *string  `json:"image"`
	Gallery         []string `json:"gallery"`
	MaxParticipants *int     `json:"maxParticipants"`
	Requirements    *string  `json:"requirements"`
	Budget          *float64 `json:"budget"`
	Tags            []string `json:"tags"`
	CategoryID      string   `json:"categoryId"`
	ProjectID       *string  `json:"projectId"`
	AuthorID        string   `json:"authorId"`
	AuthorEmail     string   `json:"authorEmail"`
}

// Create creates a new activity
// @Summary Create activity
// @Description Create a new activity (Admin only)
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateActivityRequest true "Activity data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if req.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if req.CategoryID == "" {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Activity")
	}

	activityType, err := domain.NormalizeEnum("activity type", req.Type, domain.ActivityTypes)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}

	ok, err := h.categoryRepo.Exists(c.Context(), req.CategoryID)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}
	if !ok {
		return response.Domain(c, domain.BadReference("category"), "Activity")
	}

	if req.ProjectID != nil && *req.ProjectID != "" {
		ok, err := h.projectRepo.Exists(c.Context(), *req.ProjectID)
		if err != nil {
			return response.Domain(c, err, "Activity")
		}
		if !ok {
			return response.Domain(c, domain.BadReference("project"), "Activity")
		}
	}

	author, err := resolveAuthor(c, h.userRepo, h.cfg, req.AuthorID, req.AuthorEmail)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}

	activity := &models.Activity{
		Title:           req.Title,
		Description:     req.Description,
		Type:            activityType,
		StartDate:       startDate,
		EndDate:         endDate,
		Location:        optionalString(req.Location),
		Status:          "PLANNING",
		IsPublic:        true,
		Image:           optionalString(req.Image),
		MaxParticipants: req.MaxParticipants,
		Requirements:    optionalString(req.Requirements),
		Budget:          req.Budget,
		CategoryID:      &req.CategoryID,
		ProjectID:       optionalString(req.ProjectID),
		AuthorID:        author.ID,
	}
	if req.IsPublic != nil {
		activity.IsPublic = *req.IsPublic
	}
	if len(req.Tags) > 0 {
		activity.Tags = toJSON(req.Tags)
	}
	if len(req.Gallery) > 0 {
		activity.Gallery = toJSON(req.Gallery)
	}

	if err := h.activityRepo.Create(c.Context(), activity); err != nil {
		return response.Domain(c, err, "Activity")
	}

	return response.Created(c, "Activity created successfully", activity)
}

// UpdateActivityRequest represents partial update of an activity. Absent
// fields keep their stored values; clearable fields are cleared with "".
type UpdateActivityRequest struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	Type                *string   `json:"type"`
	StartDate           *string   `json:"startDate"`
	EndDate             *string   `json:"endDate"`
	Location            *string   `json:"location"`
	Status              *string   `json:"status"`
	IsPublic            *bool     `json:"isPublic"`
	Image               *string   `json:"image"`
	Gallery             *[]string `json:"gallery"`
	MaxParticipants     *int      `json:"maxParticipants"`
	CurrentParticipants *int      `json:"currentParticipants"`
	Requirements        *string   `json:"requirements"`
	Budget              *float64  `json:"budget"`
	Tags                *[]string `json:"tags"`
	CategoryID          *string   `json:"categoryId"`
	ProjectID           *string   `json:"projectId"`
}

// Update partially updates an activity by id
// @Summary Update activity
// @Description Update fields of an existing activity (Admin only)
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Activity ID"
// @Param body body UpdateActivityRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /activities [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Activity ID is required")
	}

	var req UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	activity, err := h.activityRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Activity")
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Type != nil {
		activityType, err := domain.NormalizeEnum("activity type", *req.Type, domain.ActivityTypes)
		if err != nil {
			return response.Domain(c, err, "Activity")
		}
		activity.Type = activityType
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("activity status", *req.Status, domain.ActivityStatuses)
		if err != nil {
			return response.Domain(c, err, "Activity")
		}
		activity.Status = status
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return response.Domain(c, err, "Activity")
		}
		activity.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return response.Domain(c, err, "Activity")
		}
		activity.EndDate = endDate
	}
	if req.Location != nil {
		activity.Location = optionalString(req.Location)
	}
	if req.IsPublic != nil {
		activity.IsPublic = *req.IsPublic
	}
	if req.Image != nil {
		activity.Image = optionalString(req.Image)
	}
	if req.Gallery != nil {
		activity.Gallery = toJSON(*req.Gallery)
	}
	if req.MaxParticipants != nil {
		activity.MaxParticipants = req.MaxParticipants
	}
	if req.CurrentParticipants != nil {
		activity.CurrentParticipants = *req.CurrentParticipants
	}
	if req.Requirements != nil {
		activity.Requirements = optionalString(req.Requirements)
	}
	if req.Budget != nil {
		activity.Budget = req.Budget
	}
	if req.Tags != nil {
		activity.Tags = toJSON(*req.Tags)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			activity.CategoryID = nil
		} else {
			ok, err := h.categoryRepo.Exists(c.Context(), *req.CategoryID)
			if err != nil {
				return response.Domain(c, err, "Activity")
			}
			if !ok {
				return response.Domain(c, domain.BadReference("category"), "Activity")
			}
			activity.CategoryID = req.CategoryID
		}
	}
	if req.ProjectID != nil {
		if *req.ProjectID == "" {
			activity.ProjectID = nil
		} else {
			ok, err := h.projectRepo.Exists(c.Context(), *req.ProjectID)
			if err != nil {
				return response.Domain(c, err, "Activity")
			}
			if !ok {
				return response.Domain(c, domain.BadReference("project"), "Activity")
			}
			activity.ProjectID = req.ProjectID
		}
	}

	if err := h.activityRepo.Update(c.Context(), activity); err != nil {
		return response.Domain(c, err, "Activity")
	}

	return response.Success(c, "Activity updated successfully", activity)
}

// Delete removes an activity by id
// @Summary Delete activity
// @Description Delete an activity permanently (Admin only)
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id query string true "Activity ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /activities [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Activity ID is required")
	}

	if err := h.activityRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Activity")
	}

	return response.Success(c, "Activity deleted successfully", nil)
}

package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	cfg         *config.Config
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(
	projectRepo *repositories.ProjectRepository,
	userRepo *repositories.UserRepository,
	cfg *config.Config,
) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

var projectFilters = filter.Spec{Fields: []filter.Field{
	{Param: "year", Column: "academic_year", Op: filter.EqInt},
	{Param: "semester", Op: filter.EqInt},
	{Param: "status", Op: filter.EqUpper},
	{Param: "priority", Op: filter.EqUpper},
	{Param: "isActive", Column: "is_active", Op: filter.EqBool},
}}

// List lists projects, or fetches one when an id is given
// @Summary List projects
// @Description List projects with optional filters, or fetch one by id
// @Tags Projects
// @Produce json
// @Param id query string false "Project ID (single fetch)"
// @Param year query int false "Academic year"
// @Param semester query int false "Semester"
// @Param status query string false "Project status"
// @Param priority query string false "Project priority"
// @Param isActive query bool false "Active flag"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		project, err := h.projectRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
		return response.Success(c, "Project retrieved successfully", project)
	}

	projects, total, err := h.projectRepo.List(c.Context(), projectFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Projects")
	}
	return response.List(c, projects, total)
}

// CreateProjectRequest represents create project request
type CreateProjectRequest struct {
	Code             string   `json:"code"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	AcademicYear     int      `json:"academicYear"`
	Semester         int      `json:"semester"`
	Status           string   `json:"status"`
	Priority         string   `json:"priority"`
	StartDate        string   `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Budget           *float64 `json:"budget"`
	Objectives       *string  `json:"objectives"`
	TargetGroup      *string  `json:"targetGroup"`
	ExpectedResults  *string  `json:"expectedResults"`
	Sponsor          *string  `json:"sponsor"`
	Coordinator      *string  `json:"coordinator"`
	Image            *string  `json:"image"`
	AuthorID         string   `json:"authorId"`
	AuthorEmail      string   `json:"authorEmail"`
}

// Create creates a new project
// @Summary Create project
// @Description Create a new project (Admin only)
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateProjectRequest true "Project data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Code == "" {
		missing = append(missing, "code")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.AcademicYear == 0 {
		missing = append(missing, "academicYear")
	}
	if req.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Project")
	}

	taken, err := h.projectRepo.ExistsByCode(c.Context(), req.Code)
	if err != nil {
		return response.Domain(c, err, "Project")
	}
	if taken {
		return response.Domain(c, domain.Invalid("Project code already in use: %s", req.Code), "Project")
	}

	status := "PLANNING"
	if req.Status != "" {
		status, err = domain.NormalizeEnum("project status", req.Status, domain.ProjectStatuses)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
	}
	priority := "MEDIUM"
	if req.Priority != "" {
		priority, err = domain.NormalizeEnum("project priority", req.Priority, domain.Priorities)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return response.Domain(c, err, "Project")
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return response.Domain(c, err, "Project")
	}

	author, err := resolveAuthor(c, h.userRepo, h.cfg, req.AuthorID, req.AuthorEmail)
	if err != nil {
		return response.Domain(c, err, "Project")
	}

	semester := req.Semester
	if semester == 0 {
		semester = 1
	}

	project := &models.Project{
		Code:             req.Code,
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: optionalString(req.ShortDescription),
		AcademicYear:     req.AcademicYear,
		Semester:         semester,
		Status:           status,
		Priority:         priority,
		StartDate:        startDate,
		EndDate:          endDate,
		Budget:           req.Budget,
		Objectives:       optionalString(req.Objectives),
		TargetGroup:      optionalString(req.TargetGroup),
		ExpectedResults:  optionalString(req.ExpectedResults),
		Sponsor:          optionalString(req.Sponsor),
		Coordinator:      optionalString(req.Coordinator),
		IsActive:         true,
		Image:            optionalString(req.Image),
		AuthorID:         author.ID,
	}

	if err := h.projectRepo.Create(c.Context(), project); err != nil {
		return response.Domain(c, err, "Project")
	}

	return response.Created(c, "Project created successfully", project)
}

// UpdateProjectRequest represents partial update of a project
type UpdateProjectRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	AcademicYear     *int     `json:"academicYear"`
	Semester         *int     `json:"semester"`
	Status           *string  `json:"status"`
	Priority         *string  `json:"priority"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Budget           *float64 `json:"budget"`
	Objectives       *string  `json:"objectives"`
	TargetGroup      *string  `json:"targetGroup"`
	ExpectedResults  *string  `json:"expectedResults"`
	Sponsor          *string  `json:"sponsor"`
	Coordinator      *string  `json:"coordinator"`
	IsActive         *bool    `json:"isActive"`
	Image            *string  `json:"image"`
}

// Update partially updates a project by id
// @Summary Update project
// @Description Update fields of an existing project (Admin only)
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Project ID"
// @Param body body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /projects [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Project ID is required")
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	project, err := h.projectRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Project")
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = optionalString(req.ShortDescription)
	}
	if req.AcademicYear != nil {
		project.AcademicYear = *req.AcademicYear
	}
	if req.Semester != nil {
		project.Semester = *req.Semester
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("project status", *req.Status, domain.ProjectStatuses)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
		project.Status = status
	}
	if req.Priority != nil {
		priority, err := domain.NormalizeEnum("project priority", *req.Priority, domain.Priorities)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
		project.Priority = priority
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return response.Domain(c, err, "Project")
		}
		project.EndDate = endDate
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Objectives != nil {
		project.Objectives = optionalString(req.Objectives)
	}
	if req.TargetGroup != nil {
		project.TargetGroup = optionalString(req.TargetGroup)
	}
	if req.ExpectedResults != nil {
		project.ExpectedResults = optionalString(req.ExpectedResults)
	}
	if req.Sponsor != nil {
		project.Sponsor = optionalString(req.Sponsor)
	}
	if req.Coordinator != nil {
		project.Coordinator = optionalString(req.Coordinator)
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	if req.Image != nil {
		project.Image = optionalString(req.Image)
	}

	if err := h.projectRepo.Update(c.Context(), project); err != nil {
		return response.Domain(c, err, "Project")
	}

	return response.Success(c, "Project updated successfully", project)
}

// Delete removes a project by id
// @Summary Delete project
// @Description Delete a project permanently (Admin only)
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id query string true "Project ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /projects [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Project ID is required")
	}

	if err := h.projectRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Project")
	}

	return response.Success(c, "Project deleted successfully", nil)
}

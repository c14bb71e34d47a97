package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonationHandler handles fundraising campaign endpoints
type DonationHandler struct {
	donationRepo *repositories.DonationRepository
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationRepo *repositories.DonationRepository) *DonationHandler {
	return &DonationHandler{donationRepo: donationRepo}
}

var campaignFilters = filter.Spec{Fields: []filter.Field{
	{Param: "status", Op: filter.EqUpper, Default: "ACTIVE"},
	{Param: "category"},
}}

// List lists campaigns, or fetches one with its donations when an id is given
// @Summary List donation campaigns
// @Description List campaigns with optional filters, or fetch one by id
// @Tags Donations
// @Produce json
// @Param id query string false "Campaign ID (single fetch)"
// @Param status query string false "Campaign status (default ACTIVE)"
// @Param category query string false "Campaign category"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		campaign, err := h.donationRepo.GetCampaignByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Donation campaign")
		}
		return response.Success(c, "Donation campaign retrieved successfully", campaign)
	}

	campaigns, total, err := h.donationRepo.ListCampaigns(c.Context(), campaignFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Donation campaigns")
	}
	return response.List(c, campaigns, total)
}

// CreateCampaignRequest represents create campaign request
type CreateCampaignRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"targetAmount"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Category     *string `json:"category"`
	Image        *string `json:"image"`
}

// Create creates a fundraising campaign
// @Summary Create donation campaign
// @Description Create a fundraising campaign (Admin only)
// @Tags Donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCampaignRequest true "Campaign data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var req CreateCampaignRequest
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
	if req.TargetAmount <= 0 {
		missing = append(missing, "targetAmount")
	}
	if req.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Donation campaign")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return response.Domain(c, err, "Donation campaign")
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return response.Domain(c, err, "Donation campaign")
	}

	campaign := &models.DonationCampaign{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       "ACTIVE",
		Category:     optionalString(req.Category),
		Image:        optionalString(req.Image),
	}
	if sessionID, ok := c.Locals("userID").(string); ok && sessionID != "" {
		campaign.CreatedBy = &sessionID
	}

	if err := h.donationRepo.CreateCampaign(c.Context(), campaign); err != nil {
		return response.Domain(c, err, "Donation campaign")
	}

	return response.Created(c, "Donation campaign created successfully", campaign)
}

// UpdateCampaignRequest represents partial update of a campaign
type UpdateCampaignRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	TargetAmount *float64 `json:"targetAmount"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Status       *string  `json:"status"`
	Category     *string  `json:"category"`
	Image        *string  `json:"image"`
}

// Update partially updates a campaign by id
// @Summary Update donation campaign
// @Description Update fields of an existing campaign (Admin only)
// @Tags Donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Campaign ID"
// @Param body body UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations [put]
func (h *DonationHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Campaign ID is required")
	}

	var req UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	campaign, err := h.donationRepo.GetCampaignByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Donation campaign")
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount <= 0 {
			return response.Domain(c, domain.Invalid("targetAmount must be positive"), "Donation campaign")
		}
		campaign.TargetAmount = *req.TargetAmount
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return response.Domain(c, err, "Donation campaign")
		}
		campaign.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return response.Domain(c, err, "Donation campaign")
		}
		campaign.EndDate = endDate
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("campaign status", *req.Status, domain.CampaignStatuses)
		if err != nil {
			return response.Domain(c, err, "Donation campaign")
		}
		campaign.Status = status
	}
	if req.Category != nil {
		campaign.Category = optionalString(req.Category)
	}
	if req.Image != nil {
		campaign.Image = optionalString(req.Image)
	}

	if err := h.donationRepo.UpdateCampaign(c.Context(), campaign); err != nil {
		return response.Domain(c, err, "Donation campaign")
	}

	return response.Success(c, "Donation campaign updated successfully", campaign)
}

// Delete removes a campaign by id
// @Summary Delete donation campaign
// @Description Delete a campaign permanently (Admin only)
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Param id query string true "Campaign ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations [delete]
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Campaign ID is required")
	}

	if err := h.donationRepo.DeleteCampaign(c.Context(), id); err != nil {
		return response.Domain(c, err, "Donation campaign")
	}

	return response.Success(c, "Donation campaign deleted successfully", nil)
}

// DonateRequest represents one donation to a campaign
type DonateRequest struct {
	CampaignID string  `json:"campaignId"`
	DonorName  string  `json:"donorName"`
	Amount     float64 `json:"amount"`
	Message    *string `json:"message"`
}

// Donate records a donation and bumps the campaign total
// @Summary Record donation
// @Description Record a donation against an active campaign
// @Tags Donations
// @Accept json
// @Produce json
// @Param body body DonateRequest true "Donation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donations/donate [post]
func (h *DonationHandler) Donate(c *fiber.Ctx) error {
	var req DonateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.CampaignID == "" {
		missing = append(missing, "campaignId")
	}
	if req.DonorName == "" {
		missing = append(missing, "donorName")
	}
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Donation")
	}

	campaign, err := h.donationRepo.GetCampaignByID(c.Context(), req.CampaignID)
	if err != nil {
		return response.Domain(c, domain.BadReference("campaign"), "Donation")
	}
	if campaign.Status != "ACTIVE" {
		return response.Domain(c, domain.Invalid("Campaign is not accepting donations"), "Donation")
	}

	donation := &models.Donation{
		CampaignID: req.CampaignID,
		DonorName:  req.DonorName,
		Amount:     req.Amount,
		Message:    optionalString(req.Message),
	}

	if err := h.donationRepo.AddDonation(c.Context(), donation); err != nil {
		return response.Domain(c, err, "Donation")
	}

	return response.Created(c, "Donation recorded successfully", donation)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/middleware"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/routes"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/jwt"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   *int64          `json:"total"`
	Error   string          `json:"error"`
}

type testServer struct {
	app        *fiber.App
	db         *gorm.DB
	adminToken string
	admin      *models.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode:             "dev",
		UploadDir:           t.TempDir(),
		AllowAuthorFallback: true,
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}

	hashed, err := password.Hash("admin-password")
	require.NoError(t, err)
	admin := &models.User{
		Email:    "admin@test.local",
		Username: "admin",
		Password: hashed,
		Role:     "ADMIN",
		IsActive: true,
	}
	require.NoError(t, db.Create(admin).Error)

	token, err := jwt.GenerateAccessToken(admin.ID, admin.Email, admin.Role, cfg.JWT.Secret, 15)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, db, cfg)

	return &testServer{app: app, db: db, adminToken: token, admin: admin}
}

func (s *testServer) request(t *testing.T, method, target string, body interface{}, authed bool) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.adminToken)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func (s *testServer) seedCategory(t *testing.T, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: slug, Slug: slug, IsActive: true}
	require.NoError(t, s.db.Create(category).Error)
	return category
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestActivityCreateNormalizesEnumAndDefaults(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	status, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Arduino Workshop",
		"description": "Hands-on session",
		"type":        "workshop",
		"startDate":   "2026-09-01",
		"categoryId":  category.ID,
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)
	require.True(t, env.Success)

	activity := decode[models.Activity](t, env.Data)
	assert.Equal(t, "WORKSHOP", activity.Type)
	assert.Equal(t, "PLANNING", activity.Status)
	assert.True(t, activity.IsPublic)
	assert.Equal(t, s.admin.ID, activity.AuthorID)
}

func TestActivityCreateRejectsUnknownCategory(t *testing.T) {
	s := newTestServer(t)

	status, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Orphan",
		"description": "d",
		"type":        "WORKSHOP",
		"startDate":   "2026-09-01",
		"categoryId":  "no-such-category",
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestActivityCreateRejectsInvalidEnum(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	status, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Party",
		"description": "d",
		"type":        "PARTY",
		"startDate":   "2026-09-01",
		"categoryId":  category.ID,
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "WORKSHOP")
}

func TestActivityListDefaultsToPublic(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	create := func(title string, isPublic bool) {
		status, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
			"title":       title,
			"description": "d",
			"type":        "WORKSHOP",
			"startDate":   "2026-09-01",
			"categoryId":  category.ID,
			"isPublic":    isPublic,
		}, true)
		require.Equal(t, http.StatusCreated, status, env.Error)
	}
	create("public one", true)
	create("hidden one", false)

	status, env := s.request(t, http.MethodGet, "/api/activities", nil, false)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Total)
	assert.EqualValues(t, 1, *env.Total)

	status, env = s.request(t, http.MethodGet, "/api/activities?isPublic=false", nil, false)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, *env.Total)
}

func TestActivityPartialUpdate(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	_, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Original title",
		"description": "Original description",
		"type":        "WORKSHOP",
		"startDate":   "2026-09-01",
		"categoryId":  category.ID,
		"location":    "Building 45",
	}, true)
	created := decode[models.Activity](t, env.Data)

	status, env := s.request(t, http.MethodPut, "/api/activities?id="+created.ID, fiber.Map{
		"title": "Renamed",
	}, true)
	require.Equal(t, http.StatusOK, status, env.Error)

	updated := decode[models.Activity](t, env.Data)
	assert.Equal(t, "Renamed", updated.Title)
	// Absent fields are untouched
	assert.Equal(t, "Original description", updated.Description)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Building 45", *updated.Location)
}

func TestActivityDeleteThenFetch(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	_, env := s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Doomed",
		"description": "d",
		"type":        "WORKSHOP",
		"startDate":   "2026-09-01",
		"categoryId":  category.ID,
	}, true)
	created := decode[models.Activity](t, env.Data)

	status, _ := s.request(t, http.MethodDelete, "/api/activities?id="+created.ID, nil, true)
	require.Equal(t, http.StatusOK, status)

	status, env = s.request(t, http.MethodGet, "/api/activities?id="+created.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = s.request(t, http.MethodDelete, "/api/activities?id="+created.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNewsSlugDerivedAndUnique(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "announcement")

	_, env := s.request(t, http.MethodPost, "/api/news", fiber.Map{
		"title":      "Exam Schedule Released",
		"content":    "body",
		"categoryId": category.ID,
	}, true)
	first := decode[models.News](t, env.Data)
	assert.Contains(t, first.Slug, "exam-schedule-released")
	assert.Equal(t, "DRAFT", first.Status)

	// A colliding explicit slug is suffixed rather than rejected
	status, env := s.request(t, http.MethodPost, "/api/news", fiber.Map{
		"title":      "Duplicate",
		"slug":       first.Slug,
		"content":    "body",
		"categoryId": category.ID,
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)
	second := decode[models.News](t, env.Data)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, first.Slug)

	// On update a colliding slug is a client error
	status, env = s.request(t, http.MethodPut, "/api/news?id="+second.ID, fiber.Map{
		"slug": first.Slug,
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "Slug")
}

func TestNewsPublishSetsPublishedAt(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "announcement")

	_, env := s.request(t, http.MethodPost, "/api/news", fiber.Map{
		"title":      "Draft first",
		"content":    "body",
		"categoryId": category.ID,
	}, true)
	article := decode[models.News](t, env.Data)
	require.Nil(t, article.PublishedAt)

	_, env = s.request(t, http.MethodPut, "/api/news?id="+article.ID, fiber.Map{
		"status": "published",
	}, true)
	published := decode[models.News](t, env.Data)
	assert.Equal(t, "PUBLISHED", published.Status)
	assert.NotNil(t, published.PublishedAt)
}

func TestNewsSingleFetchCountsView(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "announcement")

	_, env := s.request(t, http.MethodPost, "/api/news", fiber.Map{
		"title":      "Viewed",
		"content":    "body",
		"categoryId": category.ID,
		"status":     "PUBLISHED",
	}, true)
	article := decode[models.News](t, env.Data)

	for i := 0; i < 3; i++ {
		status, env := s.request(t, http.MethodGet, "/api/news?id="+article.ID, nil, false)
		require.Equal(t, http.StatusOK, status)
		got := decode[models.News](t, env.Data)
		assert.Equal(t, i+1, got.ViewCount)
	}
}

func TestProjectWithActivitiesRoundTrip(t *testing.T) {
	s := newTestServer(t)
	category := s.seedCategory(t, "academic")

	status, env := s.request(t, http.MethodPost, "/api/projects", fiber.Map{
		"code":         "PRJ-2026-001",
		"title":        "Science Week",
		"description":  "Annual science week",
		"academicYear": 2026,
		"startDate":    "2026-08-01",
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)
	project := decode[models.Project](t, env.Data)
	assert.Equal(t, "PLANNING", project.Status)

	// Duplicate project code is rejected
	status, _ = s.request(t, http.MethodPost, "/api/projects", fiber.Map{
		"code":         "PRJ-2026-001",
		"title":        "Clone",
		"description":  "d",
		"academicYear": 2026,
		"startDate":    "2026-08-01",
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.request(t, http.MethodPost, "/api/activities", fiber.Map{
		"title":       "Opening Ceremony",
		"description": "d",
		"type":        "CEREMONY",
		"startDate":   "2026-08-01",
		"categoryId":  category.ID,
		"projectId":   project.ID,
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = s.request(t, http.MethodGet, "/api/projects?id="+project.ID, nil, false)
	require.Equal(t, http.StatusOK, status)
	fetched := decode[models.Project](t, env.Data)
	require.Len(t, fetched.Activities, 1)
	assert.Equal(t, "Opening Ceremony", fetched.Activities[0].Title)
}

func TestContactPublicSubmission(t *testing.T) {
	s := newTestServer(t)

	status, env := s.request(t, http.MethodPost, "/api/contacts", fiber.Map{
		"name":    "Visitor",
		"email":   "visitor@x.com",
		"subject": "Question",
		"message": "When does the club meet?",
	}, false)
	require.Equal(t, http.StatusCreated, status, env.Error)

	contact := decode[models.Contact](t, env.Data)
	assert.Equal(t, "PENDING", contact.Status)
	assert.Equal(t, "MEDIUM", contact.Priority)
	assert.Equal(t, "general", contact.Category)

	// Listing contacts requires admin credentials
	status, _ = s.request(t, http.MethodGet, "/api/contacts", nil, false)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.request(t, http.MethodGet, "/api/contacts", nil, true)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, *env.Total)
}

func TestMutationsRequireAdmin(t *testing.T) {
	s := newTestServer(t)

	status, env := s.request(t, http.MethodPost, "/api/news", fiber.Map{
		"title": "nope",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
}

func TestMemberEnrollmentEndpoint(t *testing.T) {
	s := newTestServer(t)

	status, env := s.request(t, http.MethodPost, "/api/members", fiber.Map{
		"email":      "student@x.com",
		"studentId":  "6410450001",
		"name":       "Somsri",
		"department": "Chemistry",
		"faculty":    "Science",
		"year":       3,
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)

	member := decode[models.Member](t, env.Data)
	assert.Equal(t, "6410450001", member.StudentID)
	assert.NotEmpty(t, member.UserID)

	// Same student ID again is a client error
	status, _ = s.request(t, http.MethodPost, "/api/members", fiber.Map{
		"email":      "other@x.com",
		"studentId":  "6410450001",
		"name":       "Somchai",
		"department": "Chemistry",
		"faculty":    "Science",
		"year":       1,
	}, true)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDonationFlow(t *testing.T) {
	s := newTestServer(t)

	_, env := s.request(t, http.MethodPost, "/api/donations", fiber.Map{
		"title":        "New microscope",
		"description":  "Lab equipment fund",
		"targetAmount": 50000,
		"startDate":    "2026-08-01",
	}, true)
	campaign := decode[models.DonationCampaign](t, env.Data)
	require.Equal(t, "ACTIVE", campaign.Status)

	status, env := s.request(t, http.MethodPost, "/api/donations/donate", fiber.Map{
		"campaignId": campaign.ID,
		"donorName":  "Alumni",
		"amount":     2500,
	}, false)
	require.Equal(t, http.StatusCreated, status, env.Error)

	_, env = s.request(t, http.MethodGet, fmt.Sprintf("/api/donations?id=%s", campaign.ID), nil, false)
	fetched := decode[models.DonationCampaign](t, env.Data)
	assert.EqualValues(t, 2500, fetched.CurrentAmount)
	assert.Len(t, fetched.Donations, 1)
}

func TestFormSubmissionFlow(t *testing.T) {
	s := newTestServer(t)

	_, env := s.request(t, http.MethodPost, "/api/forms", fiber.Map{
		"title": "Camp Registration",
		"type":  "registration",
		"fields": []fiber.Map{
			{"name": "nickname", "type": "text", "required": true},
		},
	}, true)
	form := decode[models.Form](t, env.Data)
	require.Equal(t, "ACTIVE", form.Status)

	status, env := s.request(t, http.MethodPost, "/api/forms/"+form.ID+"/submissions", fiber.Map{
		"data": fiber.Map{"nickname": "Nong"},
	}, false)
	require.Equal(t, http.StatusCreated, status, env.Error)

	// Deactivated forms stop accepting submissions
	_, env = s.request(t, http.MethodPut, "/api/forms?id="+form.ID, fiber.Map{
		"status": "inactive",
	}, true)
	require.True(t, env.Success, env.Error)
	assert.Equal(t, "INACTIVE", decode[models.Form](t, env.Data).Status)

	status, _ = s.request(t, http.MethodPost, "/api/forms/"+form.ID+"/submissions", fiber.Map{
		"data": fiber.Map{"nickname": "Late"},
	}, false)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.request(t, http.MethodGet, "/api/forms/"+form.ID+"/submissions", nil, true)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, *env.Total)
}

func TestUserAdminCRUD(t *testing.T) {
	s := newTestServer(t)

	status, env := s.request(t, http.MethodPost, "/api/users", fiber.Map{
		"email":    "editor@x.com",
		"username": "editor",
		"password": "password123",
		"role":     "member",
	}, true)
	require.Equal(t, http.StatusCreated, status, env.Error)
	user := decode[models.User](t, env.Data)
	assert.Equal(t, "MEMBER", user.Role)

	status, env = s.request(t, http.MethodPut, "/api/users?id="+user.ID, fiber.Map{
		"isActive": false,
	}, true)
	require.Equal(t, http.StatusOK, status, env.Error)
	updated := decode[models.User](t, env.Data)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "MEMBER", updated.Role)

	status, _ = s.request(t, http.MethodDelete, "/api/users?id="+user.ID, nil, true)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.request(t, http.MethodGet, "/api/users?id="+user.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategoryListIsCached(t *testing.T) {
	s := newTestServer(t)
	s.seedCategory(t, "academic")

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "max-age")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Username: email, Role: role, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: slug, Slug: slug, IsActive: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func TestUserRepositoryCRUD(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "a@b.com", Username: "alice", Role: "USER", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got.FirstName = "Alice"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)

	taken, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, repo.Delete(ctx, user.ID))
	err = repo.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryFirstAdmin(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	older := &models.User{Email: "first@x.com", Username: "first", Role: "ADMIN"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(older).Error)
	seedUser(t, db, "second@x.com", "ADMIN")
	seedUser(t, db, "user@x.com", "USER")

	admin, err := repo.FirstAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", admin.Username)
}

func TestCreatePersistsFalseBooleans(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "author@x.com", "ADMIN")

	staff := &models.Staff{
		EmployeeID: "E100", Name: "Retired Advisor",
		Department: "Science", Position: "Advisor", IsActive: false,
	}
	require.NoError(t, NewStaffRepository(db).Create(ctx, staff))

	got, err := NewStaffRepository(db).GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	activity := &models.Activity{
		Title: "internal retreat", Description: "d", Type: "MEETING",
		StartDate: time.Now(), Status: "PLANNING",
		IsPublic: false, AuthorID: author.ID,
	}
	require.NoError(t, NewActivityRepository(db).Create(ctx, activity))

	gotActivity, err := NewActivityRepository(db).GetByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.False(t, gotActivity.IsPublic)
}

func TestNewsListOrdersByPriority(t *testing.T) {
	db := testDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author@x.com", "ADMIN")
	category := seedCategory(t, db, "general")

	for _, p := range []string{"LOW", "URGENT", "MEDIUM", "HIGH"} {
		article := &models.News{
			Title:      p,
			Slug:       "slug-" + p,
			Content:    "body",
			CategoryID: category.ID,
			Priority:   p,
			Status:     "PUBLISHED",
			AuthorID:   author.ID,
		}
		require.NoError(t, repo.Create(ctx, article))
	}

	articles, total, err := repo.List(ctx, nil, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	var order []string
	for _, a := range articles {
		order = append(order, a.Priority)
	}
	assert.Equal(t, []string{"URGENT", "HIGH", "MEDIUM", "LOW"}, order)
}

func TestNewsIncrementViewCountKeepsUpdatedAt(t *testing.T) {
	db := testDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author@x.com", "ADMIN")
	category := seedCategory(t, db, "general")
	article := &models.News{
		Title: "t", Slug: "s", Content: "c",
		CategoryID: category.ID, Priority: "MEDIUM", Status: "PUBLISHED",
		AuthorID: author.ID,
	}
	require.NoError(t, repo.Create(ctx, article))
	before := article.UpdatedAt

	require.NoError(t, repo.IncrementViewCount(ctx, article.ID))
	require.NoError(t, repo.IncrementViewCount(ctx, article.ID))

	got, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
	assert.Equal(t, before.Unix(), got.UpdatedAt.Unix())
}

func TestActivityCompleteEnded(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "author@x.com", "ADMIN")

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	ended := &models.Activity{
		Title: "ended", Description: "d", Type: "WORKSHOP",
		StartDate: past.Add(-time.Hour), EndDate: &past,
		Status: "IN_PROGRESS", AuthorID: author.ID,
	}
	running := &models.Activity{
		Title: "running", Description: "d", Type: "WORKSHOP",
		StartDate: past, EndDate: &future,
		Status: "IN_PROGRESS", AuthorID: author.ID,
	}
	require.NoError(t, repo.Create(ctx, ended))
	require.NoError(t, repo.Create(ctx, running))

	n, err := repo.CompleteEnded(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, ended.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", got.Status)

	got, err = repo.GetByID(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", got.Status)
}

func TestDonationAddUpdatesCampaignTotal(t *testing.T) {
	db := testDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	campaign := &models.DonationCampaign{
		Title: "lab fund", Description: "d",
		TargetAmount: 1000, StartDate: time.Now(), Status: "ACTIVE",
	}
	require.NoError(t, repo.CreateCampaign(ctx, campaign))

	require.NoError(t, repo.AddDonation(ctx, &models.Donation{
		CampaignID: campaign.ID, DonorName: "Anon", Amount: 150,
	}))
	require.NoError(t, repo.AddDonation(ctx, &models.Donation{
		CampaignID: campaign.ID, DonorName: "Anon", Amount: 50,
	}))

	got, err := repo.GetCampaignByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 200, got.CurrentAmount)
	assert.Len(t, got.Donations, 2)
}

func TestDonationCloseExpired(t *testing.T) {
	db := testDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	past := time.Now().Add(-24 * time.Hour)
	expired := &models.DonationCampaign{
		Title: "old", Description: "d", TargetAmount: 100,
		StartDate: past.Add(-time.Hour), EndDate: &past, Status: "ACTIVE",
	}
	open := &models.DonationCampaign{
		Title: "open", Description: "d", TargetAmount: 100,
		StartDate: past, Status: "ACTIVE",
	}
	require.NoError(t, repo.CreateCampaign(ctx, expired))
	require.NoError(t, repo.CreateCampaign(ctx, open))

	n, err := repo.CloseExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetCampaignByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", got.Status)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	db := testDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "u@x.com", "USER")

	token := &models.RefreshToken{
		ID:        "token-1",
		UserID:    user.ID,
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, token))

	got, err := repo.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.False(t, got.IsRevoked())

	require.NoError(t, repo.Revoke(ctx, got.ID))
	got, err = repo.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())

	stale := &models.RefreshToken{
		ID:        "token-2",
		UserID:    user.ID,
		TokenHash: "hash-2",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, stale))

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

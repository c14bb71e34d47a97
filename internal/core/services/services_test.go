package services

import (
	"context"
	"testing"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"

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

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterInput{
		Email:    "new@x.com",
		Username: "newuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "USER", resp.User.Role)

	login, err := svc.Login(ctx, &LoginInput{Email: "new@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "a@x.com", Username: "a", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "a@x.com", Username: "b", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "a@x.com", Username: "a", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterInput{Email: "a@x.com", Username: "a", Password: "password123"})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The consumed token is revoked and cannot be replayed
	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := testDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterInput{Email: "a@x.com", Username: "a", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.Error(t, err)
}

func TestEnrollCreatesUserAndMember(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)
	ctx := context.Background()

	member, err := svc.Enroll(ctx, &EnrollInput{
		Email:      "student@x.com",
		StudentID:  "6410450000",
		Name:       "Somchai",
		Department: "Computer Science",
		Faculty:    "Science",
		Year:       2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)

	var user models.User
	require.NoError(t, db.Where("id = ?", member.UserID).First(&user).Error)
	assert.Equal(t, "MEMBER", user.Role)
	assert.Equal(t, "6410450000", user.Username)
}

func TestEnrollRejectsDuplicateStudentID(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)
	ctx := context.Background()

	input := &EnrollInput{
		Email: "a@x.com", StudentID: "001",
		Name: "A", Department: "CS", Faculty: "Science", Year: 1,
	}
	_, err := svc.Enroll(ctx, input)
	require.NoError(t, err)

	dup := &EnrollInput{
		Email: "b@x.com", StudentID: "001",
		Name: "B", Department: "CS", Faculty: "Science", Year: 1,
	}
	_, err = svc.Enroll(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrStudentIDTaken)

	// The failed enrollment must not leave an orphaned user behind
	var count int64
	db.Model(&models.User{}).Where("email = ?", "b@x.com").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestEnrollRejectsUnknownUserReference(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, &EnrollInput{
		UserID: "missing-user", StudentID: "002",
		Name: "C", Department: "CS", Faculty: "Science", Year: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestEnrollMissingFields(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)

	_, err := svc.Enroll(context.Background(), &EnrollInput{})
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

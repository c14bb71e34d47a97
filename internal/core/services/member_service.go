package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/password"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MemberService handles member enrollment business logic. Enrollment may
// create a user account and the member profile together, so it owns a
// transaction boundary instead of going straight to the repositories.
type MemberService struct {
	db *gorm.DB
}

// NewMemberService creates a new member service
func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// EnrollInput represents member enrollment input. When UserID is empty a new
// user account is created from Email and Password.
type EnrollInput struct {
	UserID     string   `json:"userId"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	StudentID  string   `json:"studentId"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Faculty    string   `json:"faculty"`
	Year       int      `json:"year"`
	Phone      *string  `json:"phone"`
	Position   *string  `json:"position"`
	Division   *string  `json:"division"`
	Avatar     *string  `json:"avatar"`
	Bio        *string  `json:"bio"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
}

func (in *EnrollInput) validate() error {
	var missing []string
	if in.StudentID == "" {
		missing = append(missing, "studentId")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Department == "" {
		missing = append(missing, "department")
	}
	if in.Faculty == "" {
		missing = append(missing, "faculty")
	}
	if in.Year == 0 {
		missing = append(missing, "year")
	}
	if in.UserID == "" && in.Email == "" {
		missing = append(missing, "userId or email")
	}
	if len(missing) > 0 {
		return domain.MissingFields(missing)
	}
	return nil
}

// Enroll creates a member profile, and the backing user account when none is
// given, inside a single transaction so a failure leaves no orphaned user.
func (s *MemberService) Enroll(ctx context.Context, input *EnrollInput) (*models.Member, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var member *models.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		memberRepo := repositories.NewMemberRepository(tx)

		taken, err := memberRepo.ExistsByStudentID(ctx, input.StudentID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrStudentIDTaken
		}

		userID := input.UserID
		if userID == "" {
			user, err := s.createUser(ctx, userRepo, input)
			if err != nil {
				return err
			}
			userID = user.ID
		} else {
			if _, err := userRepo.GetByID(ctx, userID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.BadReference("user")
				}
				return err
			}
		}

		linked, err := memberRepo.ExistsByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if linked {
			return domain.ErrDuplicateEntry
		}

		member = &models.Member{
			UserID:     userID,
			StudentID:  input.StudentID,
			Name:       input.Name,
			Department: input.Department,
			Faculty:    input.Faculty,
			Year:       input.Year,
			Phone:      input.Phone,
			Position:   input.Position,
			Division:   input.Division,
			Avatar:     input.Avatar,
			Bio:        input.Bio,
			IsActive:   true,
		}
		if input.Email != "" {
			member.Email = &input.Email
		}
		if len(input.Skills) > 0 {
			member.Skills = mustJSON(input.Skills)
		}
		if len(input.Interests) > 0 {
			member.Interests = mustJSON(input.Interests)
		}
		return memberRepo.Create(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member enrolled: %s (%s)", member.Name, member.StudentID)
	return member, nil
}

func (s *MemberService) createUser(ctx context.Context, userRepo *repositories.UserRepository, input *EnrollInput) (*models.User, error) {
	taken, err := userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	// Enrollment without a password gets the student ID as the initial one
	pass := input.Password
	if pass == "" {
		pass = input.StudentID
	}
	hashed, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Username: input.StudentID,
		Password: hashed,
		Role:     string(domain.RoleMember),
		IsActive: true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, _ := json.Marshal(v)
	return datatypes.JSON(raw)
}

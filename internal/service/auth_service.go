package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/auth"
	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

// UserStore is the persistence surface the auth flow needs. CreateWithCompany
// must insert the company and the user in a single transaction; on return both
// IDs are populated.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	CreateWithCompany(ctx context.Context, user *model.User, company *model.Company) error
}

type AuthService struct {
	users     UserStore
	tokens    *auth.TokenManager
	passwords *auth.PasswordHasher
}

func NewAuthService(users UserStore, tokens *auth.TokenManager, passwords *auth.PasswordHasher) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwords: passwords}
}

type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  model.User
}

// Register creates a company together with its first user. The email lookup
// and the unique index are both case-sensitive: "A@x.com" and "a@x.com" are
// distinct accounts. That matches the existing contract and is kept on
// purpose, see DESIGN.md.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.CompanyName) < 2 {
		return nil, fmt.Errorf("%w: company name must be at least 2 characters", ErrInvalidInput)
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Email: input.Email, PasswordHash: hash}
	company := &model.Company{Name: input.CompanyName}
	if err := s.users.CreateWithCompany(ctx, user, company); err != nil {
		// The unique index on users.email breaks the race two concurrent
		// registrations would otherwise win together.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(model.Principal{UserID: user.ID, CompanyID: user.CompanyID})
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: *user}, nil
}

// Login answers with the same error for an unknown email and for a wrong
// password, so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.passwords.Compare(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(model.Principal{UserID: user.ID, CompanyID: user.CompanyID})
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: *user}, nil
}

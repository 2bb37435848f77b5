package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/auth"
	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type fakeUserStore struct {
	GetByEmailFunc        func(ctx context.Context, email string) (*model.User, error)
	CreateWithCompanyFunc func(ctx context.Context, user *model.User, company *model.Company) error
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) CreateWithCompany(ctx context.Context, user *model.User, company *model.Company) error {
	if f.CreateWithCompanyFunc != nil {
		return f.CreateWithCompanyFunc(ctx, user, company)
	}
	user.ID = uuid.New()
	company.ID = uuid.New()
	user.CompanyID = company.ID
	return nil
}

func newAuthService(store *fakeUserStore) *AuthService {
	return NewAuthService(
		store,
		auth.NewTokenManager("test-secret", time.Hour),
		auth.NewPasswordHasher(bcrypt.MinCost),
	)
}

func TestRegister(t *testing.T) {
	store := &fakeUserStore{}
	svc := newAuthService(store)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:       "owner@acme.example",
		Password:    "supersecret",
		CompanyName: "Acme Construction",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "owner@acme.example", result.User.Email)
	require.NotEqual(t, uuid.Nil, result.User.ID)
	require.NotEqual(t, uuid.Nil, result.User.CompanyID)
	require.NotEqual(t, "supersecret", result.User.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "supersecret", CompanyName: "Acme"}},
		{"short password", RegisterInput{Email: "a@b.c", Password: "short", CompanyName: "Acme"}},
		{"short company name", RegisterInput{Email: "a@b.c", Password: "supersecret", CompanyName: "A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: uuid.New(), Email: email}, nil
		},
	}
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:       "owner@acme.example",
		Password:    "supersecret",
		CompanyName: "Acme Construction",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDuplicateRace(t *testing.T) {
	// Pre-check misses, insert hits the unique index.
	store := &fakeUserStore{
		CreateWithCompanyFunc: func(ctx context.Context, user *model.User, company *model.Company) error {
			return gorm.ErrDuplicatedKey
		},
	}
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:       "owner@acme.example",
		Password:    "supersecret",
		CompanyName: "Acme Construction",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterEmailCaseSensitive(t *testing.T) {
	existing := "Owner@acme.example"
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			if email == existing {
				return &model.User{ID: uuid.New(), Email: email}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:       "owner@acme.example",
		Password:    "supersecret",
		CompanyName: "Acme Construction",
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("supersecret")
	require.NoError(t, err)

	userID, companyID := uuid.New(), uuid.New()
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: userID, Email: email, PasswordHash: hash, CompanyID: companyID}, nil
		},
	}
	svc := newAuthService(store)

	result, err := svc.Login(context.Background(), LoginInput{Email: "owner@acme.example", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, userID, result.User.ID)
}

func TestLoginUniformError(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("supersecret")
	require.NoError(t, err)

	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			if email == "known@acme.example" {
				return &model.User{ID: uuid.New(), Email: email, PasswordHash: hash, CompanyID: uuid.New()}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newAuthService(store)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), LoginInput{Email: "nobody@acme.example", Password: "supersecret"})
	_, errWrongPass := svc.Login(context.Background(), LoginInput{Email: "known@acme.example", Password: "wrong password"})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &fakeUserStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, storeErr
		},
	}
	svc := newAuthService(store)

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "supersecret"})
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

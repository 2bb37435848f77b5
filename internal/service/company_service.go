package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type CompanyStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch model.CompanyPatch) (*model.Company, error)
	Search(ctx context.Context, query string, limit int) ([]model.Company, error)
}

// SearchCache is an optional read-through cache in front of company search.
// A nil cache disables caching; cache failures never fail the request.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]model.Company, bool)
	Set(ctx context.Context, query string, companies []model.Company)
}

type CompanyService struct {
	store       CompanyStore
	cache       SearchCache
	resultLimit int
}

func NewCompanyService(store CompanyStore, cache SearchCache, resultLimit int) *CompanyService {
	if resultLimit <= 0 {
		resultLimit = 20
	}
	return &CompanyService{store: store, cache: cache, resultLimit: resultLimit}
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company", ErrNotFound)
		}
		return nil, err
	}
	return company, nil
}

// Update merges the whitelisted profile fields into a company addressed by
// id. Fields outside the whitelist never reach this point; an empty patch is
// rejected rather than silently accepted.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, patch model.CompanyPatch) (*model.Company, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no valid fields provided for update", ErrInvalidInput)
	}
	company, err := s.store.UpdateProfile(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company", ErrNotFound)
		}
		return nil, err
	}
	return company, nil
}

// GetProfile and UpdateProfile resolve the company implicitly from the
// caller's principal instead of a path id.
func (s *CompanyService) GetProfile(ctx context.Context, principal model.Principal) (*model.Company, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	return s.Get(ctx, principal.CompanyID)
}

func (s *CompanyService) UpdateProfile(ctx context.Context, principal model.Principal, patch model.CompanyPatch) (*model.Company, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	return s.Update(ctx, principal.CompanyID, patch)
}

// Search runs a full-text match over name, industry and description, capped
// at the configured result limit.
func (s *CompanyService) Search(ctx context.Context, query string) ([]model.Company, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query parameter q is required", ErrInvalidInput)
	}

	if s.cache != nil {
		if companies, ok := s.cache.Get(ctx, query); ok {
			return companies, nil
		}
	}

	companies, err := s.store.Search(ctx, query, s.resultLimit)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}
	if s.cache != nil {
		s.cache.Set(ctx, query, companies)
	}
	return companies, nil
}

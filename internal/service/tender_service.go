package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TenderStore interface {
	Create(ctx context.Context, tender *model.Tender) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tender, error)
	GetOwned(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error)
	ListActive(ctx context.Context, limit, offset int) ([]model.Tender, int64, error)
	Update(ctx context.Context, tender *model.Tender) error
}

type TenderService struct {
	store TenderStore
}

func NewTenderService(store TenderStore) *TenderService {
	return &TenderService{store: store}
}

type CreateTenderInput struct {
	Title       string
	Description string
	Budget      *float64
	Deadline    *time.Time
}

// Create posts a tender on behalf of the principal's company. Tenders open in
// active status; draft exists in the schema but no flow produces it.
func (s *TenderService) Create(ctx context.Context, principal model.Principal, input CreateTenderInput) (*model.Tender, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	if utf8.RuneCountInString(input.Title) < 5 {
		return nil, fmt.Errorf("%w: title must be at least 5 characters", ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Description) < 20 {
		return nil, fmt.Errorf("%w: description must be at least 20 characters", ErrInvalidInput)
	}
	if input.Budget != nil && *input.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive", ErrInvalidInput)
	}

	tender := &model.Tender{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		CompanyID:   principal.CompanyID,
		Status:      model.TenderStatusActive,
	}
	if err := s.store.Create(ctx, tender); err != nil {
		return nil, err
	}
	return tender, nil
}

// List returns active tenders, newest first. Pages past the end of the data
// come back empty rather than failing.
func (s *TenderService) List(ctx context.Context, page, limit int) (*model.TenderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := (page - 1) * limit

	tenders, total, err := s.store.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if tenders == nil {
		tenders = []model.Tender{}
	}
	return &model.TenderPage{Tenders: tenders, Total: total}, nil
}

func (s *TenderService) Get(ctx context.Context, id uuid.UUID) (*model.Tender, error) {
	tender, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tender", ErrNotFound)
		}
		return nil, err
	}
	return tender, nil
}

// Update applies a partial merge to a tender owned by the principal's
// company. Absent and not-owned are indistinguishable to the caller: both
// surface as not found, so existence never leaks to non-owners.
func (s *TenderService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, patch model.TenderPatch) (*model.Tender, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields provided for update", ErrInvalidInput)
	}
	if patch.Title != nil && utf8.RuneCountInString(*patch.Title) < 5 {
		return nil, fmt.Errorf("%w: title must be at least 5 characters", ErrInvalidInput)
	}
	if patch.Description != nil && utf8.RuneCountInString(*patch.Description) < 20 {
		return nil, fmt.Errorf("%w: description must be at least 20 characters", ErrInvalidInput)
	}
	if patch.Budget != nil && *patch.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive", ErrInvalidInput)
	}
	if patch.Status != nil && !validTenderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown tender status", ErrInvalidInput)
	}

	tender, err := s.store.GetOwned(ctx, id, principal.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tender", ErrNotFound)
		}
		return nil, err
	}

	if patch.Title != nil {
		tender.Title = *patch.Title
	}
	if patch.Description != nil {
		tender.Description = *patch.Description
	}
	if patch.Budget != nil {
		tender.Budget = patch.Budget
	}
	if patch.Deadline != nil {
		tender.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		tender.Status = *patch.Status
	}

	if err := s.store.Update(ctx, tender); err != nil {
		return nil, err
	}
	return tender, nil
}

func validTenderStatus(status model.TenderStatus) bool {
	switch status {
	case model.TenderStatusDraft, model.TenderStatusActive, model.TenderStatusClosed, model.TenderStatusAwarded:
		return true
	default:
		return false
	}
}

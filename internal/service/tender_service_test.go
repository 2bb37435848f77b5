package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type fakeTenderStore struct {
	CreateFunc     func(ctx context.Context, tender *model.Tender) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*model.Tender, error)
	GetActiveFunc  func(ctx context.Context, id uuid.UUID) (*model.Tender, error)
	GetOwnedFunc   func(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error)
	ListActiveFunc func(ctx context.Context, limit, offset int) ([]model.Tender, int64, error)
	UpdateFunc     func(ctx context.Context, tender *model.Tender) error
}

func (f *fakeTenderStore) Create(ctx context.Context, tender *model.Tender) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, tender)
	}
	tender.ID = uuid.New()
	tender.CreatedAt = time.Now()
	return nil
}

func (f *fakeTenderStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Tender, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenderStore) GetActive(ctx context.Context, id uuid.UUID) (*model.Tender, error) {
	if f.GetActiveFunc != nil {
		return f.GetActiveFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenderStore) GetOwned(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error) {
	if f.GetOwnedFunc != nil {
		return f.GetOwnedFunc(ctx, id, companyID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenderStore) ListActive(ctx context.Context, limit, offset int) ([]model.Tender, int64, error) {
	if f.ListActiveFunc != nil {
		return f.ListActiveFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeTenderStore) Update(ctx context.Context, tender *model.Tender) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, tender)
	}
	return nil
}

func testPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), CompanyID: uuid.New()}
}

func TestTenderCreate(t *testing.T) {
	svc := NewTenderService(&fakeTenderStore{})
	principal := testPrincipal()
	budget := 50000.0

	tender, err := svc.Create(context.Background(), principal, CreateTenderInput{
		Title:       "Office renovation",
		Description: "Full renovation of the second floor office space.",
		Budget:      &budget,
	})
	require.NoError(t, err)
	require.Equal(t, model.TenderStatusActive, tender.Status)
	require.Equal(t, principal.CompanyID, tender.CompanyID)
	require.NotEqual(t, uuid.Nil, tender.ID)
}

func TestTenderCreateValidation(t *testing.T) {
	svc := NewTenderService(&fakeTenderStore{})
	principal := testPrincipal()
	negative := -1.0

	cases := []struct {
		name  string
		input CreateTenderInput
	}{
		{"short title", CreateTenderInput{Title: "abcd", Description: "Full renovation of the office space."}},
		{"short description", CreateTenderInput{Title: "Office renovation", Description: "too short"}},
		{"non-positive budget", CreateTenderInput{Title: "Office renovation", Description: "Full renovation of the office space.", Budget: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), principal, tc.input)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.Create(context.Background(), model.Principal{}, CreateTenderInput{
		Title:       "Office renovation",
		Description: "Full renovation of the office space.",
	})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTenderListPagination(t *testing.T) {
	var gotLimit, gotOffset int
	store := &fakeTenderStore{
		ListActiveFunc: func(ctx context.Context, limit, offset int) ([]model.Tender, int64, error) {
			gotLimit, gotOffset = limit, offset
			return nil, 42, nil
		},
	}
	svc := NewTenderService(store)

	page, err := svc.List(context.Background(), 3, 15)
	require.NoError(t, err)
	require.Equal(t, 15, gotLimit)
	require.Equal(t, 30, gotOffset)
	require.Equal(t, int64(42), page.Total)
	require.NotNil(t, page.Tenders)
	require.Empty(t, page.Tenders)
}

func TestTenderListClampsInput(t *testing.T) {
	var gotLimit, gotOffset int
	store := &fakeTenderStore{
		ListActiveFunc: func(ctx context.Context, limit, offset int) ([]model.Tender, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []model.Tender{}, 0, nil
		},
	}
	svc := NewTenderService(store)

	_, err := svc.List(context.Background(), -5, 0)
	require.NoError(t, err)
	require.Equal(t, defaultPageSize, gotLimit)
	require.Equal(t, 0, gotOffset)

	_, err = svc.List(context.Background(), 1, 10000)
	require.NoError(t, err)
	require.Equal(t, maxPageSize, gotLimit)
}

func TestTenderGetNotFound(t *testing.T) {
	svc := NewTenderService(&fakeTenderStore{})

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTenderUpdate(t *testing.T) {
	principal := testPrincipal()
	tenderID := uuid.New()
	store := &fakeTenderStore{
		GetOwnedFunc: func(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error) {
			require.Equal(t, tenderID, id)
			require.Equal(t, principal.CompanyID, companyID)
			return &model.Tender{
				ID:          tenderID,
				Title:       "Office renovation",
				Description: "Full renovation of the second floor office space.",
				CompanyID:   principal.CompanyID,
				Status:      model.TenderStatusActive,
			}, nil
		},
	}
	svc := NewTenderService(store)

	title := "Warehouse renovation"
	status := model.TenderStatusClosed
	tender, err := svc.Update(context.Background(), principal, tenderID, model.TenderPatch{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, "Warehouse renovation", tender.Title)
	require.Equal(t, model.TenderStatusClosed, tender.Status)
	// Untouched fields survive the merge.
	require.Equal(t, "Full renovation of the second floor office space.", tender.Description)
}

func TestTenderUpdateNotOwnerIsNotFound(t *testing.T) {
	// The store only resolves tenders scoped to the caller's company, so a
	// foreign tender and a missing tender answer identically.
	svc := NewTenderService(&fakeTenderStore{})
	title := "Warehouse renovation"

	_, err := svc.Update(context.Background(), testPrincipal(), uuid.New(), model.TenderPatch{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTenderUpdateValidation(t *testing.T) {
	svc := NewTenderService(&fakeTenderStore{})
	principal := testPrincipal()

	_, err := svc.Update(context.Background(), principal, uuid.New(), model.TenderPatch{})
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := model.TenderStatus("cancelled")
	_, err = svc.Update(context.Background(), principal, uuid.New(), model.TenderPatch{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)

	short := "abc"
	_, err = svc.Update(context.Background(), principal, uuid.New(), model.TenderPatch{Title: &short})
	require.ErrorIs(t, err, ErrInvalidInput)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type TenderRepository struct {
	db *gorm.DB
}

func NewTenderRepository(db *gorm.DB) *TenderRepository {
	return &TenderRepository{db: db}
}

const tenderColumns = `id, title, description, budget, deadline, company_id, status, created_at, updated_at`

func (r *TenderRepository) Create(ctx context.Context, tender *model.Tender) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO tenders (title, description, budget, deadline, company_id, status)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at
	`, tender.Title, tender.Description, tender.Budget, tender.Deadline,
		tender.CompanyID, tender.Status).Scan(tender).Error
}

func (r *TenderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tender, error) {
	return r.getWhere(ctx, `id = ?`, id)
}

// GetActive only matches a tender that is currently open for bids.
func (r *TenderRepository) GetActive(ctx context.Context, id uuid.UUID) (*model.Tender, error) {
	return r.getWhere(ctx, `id = ? AND status = 'active'`, id)
}

// GetOwned scopes the lookup to the owning company, so a wrong owner and a
// missing tender are the same record-not-found.
func (r *TenderRepository) GetOwned(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error) {
	return r.getWhere(ctx, `id = ? AND company_id = ?`, id, companyID)
}

func (r *TenderRepository) getWhere(ctx context.Context, where string, args ...interface{}) (*model.Tender, error) {
	var tender model.Tender
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+tenderColumns+`
		FROM tenders
		WHERE `+where+`
		LIMIT 1
	`, args...).Scan(&tender).Error
	if err != nil {
		return nil, err
	}
	if tender.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &tender, nil
}

func (r *TenderRepository) ListActive(ctx context.Context, limit, offset int) ([]model.Tender, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM tenders
		WHERE status = 'active'
	`).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var tenders []model.Tender
	err = r.db.WithContext(ctx).Raw(`
		SELECT `+tenderColumns+`
		FROM tenders
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&tenders).Error
	if err != nil {
		return nil, 0, err
	}
	return tenders, total, nil
}

func (r *TenderRepository) Update(ctx context.Context, tender *model.Tender) error {
	return r.db.WithContext(ctx).Raw(`
		UPDATE tenders
		SET title = ?, description = ?, budget = ?, deadline = ?, status = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING updated_at
	`, tender.Title, tender.Description, tender.Budget, tender.Deadline,
		tender.Status, tender.ID).Scan(tender).Error
}

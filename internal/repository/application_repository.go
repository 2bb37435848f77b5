package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, tender_id, company_id, proposal, quoted_price, status, created_at, updated_at`

// Create relies on the (tender_id, company_id) unique constraint: a
// concurrent duplicate surfaces as gorm.ErrDuplicatedKey.
func (r *ApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO applications (tender_id, company_id, proposal, quoted_price, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at
	`, application.TenderID, application.CompanyID, application.Proposal,
		application.QuotedPrice, application.Status).Scan(application).Error
}

func (r *ApplicationRepository) Exists(ctx context.Context, tenderID, companyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM applications WHERE tender_id = ? AND company_id = ?
		)
	`, tenderID, companyID).Scan(&exists).Error
	return exists, err
}

func (r *ApplicationRepository) ListByTender(ctx context.Context, tenderID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+applicationColumns+`
		FROM applications
		WHERE tender_id = ?
		ORDER BY created_at ASC
	`, tenderID).Scan(&applications).Error
	return applications, err
}

type applicationDetailRow struct {
	ID          uuid.UUID
	TenderID    uuid.UUID
	CompanyID   uuid.UUID
	Proposal    string
	QuotedPrice *float64
	Status      model.ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompanyName string
}

// ListByTenderDetailed joins the applicant company name for the export
// documents.
func (r *ApplicationRepository) ListByTenderDetailed(ctx context.Context, tenderID uuid.UUID) ([]model.ApplicationDetail, error) {
	var rows []applicationDetailRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id, a.tender_id, a.company_id, a.proposal, a.quoted_price,
			a.status, a.created_at, a.updated_at, c.name AS company_name
		FROM applications a
		JOIN companies c ON c.id = a.company_id
		WHERE a.tender_id = ?
		ORDER BY a.created_at ASC
	`, tenderID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]model.ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, model.ApplicationDetail{
			Application: model.Application{
				ID:          row.ID,
				TenderID:    row.TenderID,
				CompanyID:   row.CompanyID,
				Proposal:    row.Proposal,
				QuotedPrice: row.QuotedPrice,
				Status:      row.Status,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			CompanyName: row.CompanyName,
		})
	}
	return details, nil
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+applicationColumns+`
		FROM applications
		WHERE company_id = ?
		ORDER BY created_at DESC
	`, companyID).Scan(&applications).Error
	return applications, err
}

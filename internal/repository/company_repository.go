package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type companyRow struct {
	ID              uuid.UUID
	Name            string
	Industry        *string
	Description     *string
	Email           *string
	LogoURL         *string
	ServicesOffered []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const companyColumns = `id, name, industry, description, email, logo_url, services_offered, created_at, updated_at`

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var row companyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+companyColumns+`
		FROM companies
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	company := row.toModel()
	return &company, nil
}

// UpdateProfile applies the non-nil whitelisted fields and returns the row as
// stored. A missing company surfaces as gorm.ErrRecordNotFound.
func (r *CompanyRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch model.CompanyPatch) (*model.Company, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Industry != nil {
		sets = append(sets, "industry = ?")
		args = append(args, *patch.Industry)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.LogoURL != nil {
		sets = append(sets, "logo_url = ?")
		args = append(args, *patch.LogoURL)
	}
	args = append(args, id)

	var row companyRow
	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE id = ?
		RETURNING %s
	`, strings.Join(sets, ", "), companyColumns)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	company := row.toModel()
	return &company, nil
}

// Search ranks companies by full-text match over the generated search vector.
func (r *CompanyRepository) Search(ctx context.Context, query string, limit int) ([]model.Company, error) {
	var rows []companyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+companyColumns+`
		FROM companies
		WHERE search_vector @@ plainto_tsquery('english', ?)
		ORDER BY ts_rank(search_vector, plainto_tsquery('english', ?)) DESC, created_at DESC
		LIMIT ?
	`, query, query, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	companies := make([]model.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, row.toModel())
	}
	return companies, nil
}

func (row companyRow) toModel() model.Company {
	company := model.Company{
		ID:          row.ID,
		Name:        row.Name,
		Industry:    row.Industry,
		Description: row.Description,
		Email:       row.Email,
		LogoURL:     row.LogoURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.ServicesOffered) > 0 {
		// Malformed JSON in the column is treated as an empty list.
		_ = json.Unmarshal(row.ServicesOffered, &company.ServicesOffered)
	}
	if company.ServicesOffered == nil {
		company.ServicesOffered = []string{}
	}
	return company
}

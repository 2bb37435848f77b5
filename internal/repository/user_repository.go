package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail does an exact, case-sensitive match against the stored value.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, company_id, created_at, updated_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// CreateWithCompany inserts the company and its first user atomically. If
// either insert fails the transaction rolls back and neither row persists.
func (r *UserRepository) CreateWithCompany(ctx context.Context, user *model.User, company *model.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO companies (name)
			VALUES (?)
			RETURNING id, name, created_at, updated_at
		`, company.Name).Scan(company).Error
		if err != nil {
			return err
		}

		user.CompanyID = company.ID
		return tx.Raw(`
			INSERT INTO users (email, password_hash, company_id)
			VALUES (?, ?, ?)
			RETURNING id, created_at, updated_at
		`, user.Email, user.PasswordHash, user.CompanyID).Scan(user).Error
	})
}

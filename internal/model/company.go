package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Industry        *string   `json:"industry"`
	Description     *string   `json:"description"`
	Email           *string   `json:"email"`
	LogoURL         *string   `json:"logoUrl"`
	ServicesOffered []string  `json:"servicesOffered" gorm:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"-"`
}

// CompanyPatch carries the whitelisted profile fields. Anything the caller
// sends outside this set is dropped before it reaches the store.
type CompanyPatch struct {
	Name        *string
	Industry    *string
	Description *string
	Email       *string
	LogoURL     *string
}

func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.Industry == nil && p.Description == nil &&
		p.Email == nil && p.LogoURL == nil
}

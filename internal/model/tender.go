package model

import (
	"time"

	"github.com/google/uuid"
)

type TenderStatus string

const (
	TenderStatusDraft   TenderStatus = "draft"
	TenderStatusActive  TenderStatus = "active"
	TenderStatusClosed  TenderStatus = "closed"
	TenderStatusAwarded TenderStatus = "awarded"
)

type Tender struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Budget      *float64     `json:"budget"`
	Deadline    *time.Time   `json:"deadline"`
	CompanyID   uuid.UUID    `json:"companyId"`
	Status      TenderStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"-"`
}

// TenderPatch is a partial field merge for PUT /tenders/:id. Nil fields are
// left untouched. Status carries whatever enum value the caller supplied;
// there is no transition guard on the generic update path.
type TenderPatch struct {
	Title       *string
	Description *string
	Budget      *float64
	Deadline    *time.Time
	Status      *TenderStatus
}

func (p TenderPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Budget == nil &&
		p.Deadline == nil && p.Status == nil
}

type TenderPage struct {
	Tenders []Tender `json:"tenders"`
	Total   int64    `json:"total"`
}

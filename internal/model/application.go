package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

type Application struct {
	ID          uuid.UUID         `json:"id"`
	TenderID    uuid.UUID         `json:"tenderId"`
	CompanyID   uuid.UUID         `json:"companyId"`
	Proposal    string            `json:"proposal"`
	QuotedPrice *float64          `json:"quotedPrice"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"-"`
}

// ApplicationDetail is an Application joined with the applicant company name,
// used by the owner-facing listing and the export documents.
type ApplicationDetail struct {
	Application
	CompanyName string `json:"companyName"`
}

// ApplicationReport is the input for the XLSX and PDF export generators.
type ApplicationReport struct {
	Tender       Tender
	Owner        Company
	Applications []ApplicationDetail
	GeneratedAt  time.Time
}

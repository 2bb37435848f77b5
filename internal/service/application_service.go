package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type ApplicationStore interface {
	Create(ctx context.Context, application *model.Application) error
	Exists(ctx context.Context, tenderID, companyID uuid.UUID) (bool, error)
	ListByTender(ctx context.Context, tenderID uuid.UUID) ([]model.Application, error)
	ListByTenderDetailed(ctx context.Context, tenderID uuid.UUID) ([]model.ApplicationDetail, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Application, error)
}

type TenderReader interface {
	GetActive(ctx context.Context, id uuid.UUID) (*model.Tender, error)
	GetOwned(ctx context.Context, id, companyID uuid.UUID) (*model.Tender, error)
}

type CompanyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
}

type ExportGenerator interface {
	Generate(report model.ApplicationReport) ([]byte, error)
}

type ApplicationService struct {
	store     ApplicationStore
	tenders   TenderReader
	companies CompanyReader
	excel     ExportGenerator
	pdf       ExportGenerator
}

func NewApplicationService(store ApplicationStore, tenders TenderReader, companies CompanyReader, excel, pdf ExportGenerator) *ApplicationService {
	return &ApplicationService{
		store:     store,
		tenders:   tenders,
		companies: companies,
		excel:     excel,
		pdf:       pdf,
	}
}

type SubmitApplicationInput struct {
	Proposal    string
	QuotedPrice *float64
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Submit places a bid on another company's tender. The precondition order is
// part of the contract: existence and active status first, then the self-bid
// check, then uniqueness. A self-bid against a missing tender must answer not
// found, never the self-bid error.
func (s *ApplicationService) Submit(ctx context.Context, principal model.Principal, tenderID uuid.UUID, input SubmitApplicationInput) (*model.Application, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	if utf8.RuneCountInString(input.Proposal) < 10 {
		return nil, fmt.Errorf("%w: proposal must be at least 10 characters", ErrInvalidInput)
	}
	if input.QuotedPrice != nil && *input.QuotedPrice <= 0 {
		return nil, fmt.Errorf("%w: quoted price must be positive", ErrInvalidInput)
	}

	tender, err := s.tenders.GetActive(ctx, tenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: active tender", ErrNotFound)
		}
		return nil, err
	}
	if tender.CompanyID == principal.CompanyID {
		return nil, ErrOwnTender
	}

	// Fast path only; the unique constraint on (tender_id, company_id) is the
	// authoritative race breaker for concurrent submits.
	exists, err := s.store.Exists(ctx, tenderID, principal.CompanyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	application := &model.Application{
		TenderID:    tenderID,
		CompanyID:   principal.CompanyID,
		Proposal:    input.Proposal,
		QuotedPrice: input.QuotedPrice,
		Status:      model.ApplicationStatusSubmitted,
	}
	if err := s.store.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return application, nil
}

// ListByTender returns the inbound bids on a tender, visible only to the
// tender's owner. Non-owners get the same not found as a missing tender.
func (s *ApplicationService) ListByTender(ctx context.Context, principal model.Principal, tenderID uuid.UUID) ([]model.Application, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	if _, err := s.tenders.GetOwned(ctx, tenderID, principal.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tender", ErrNotFound)
		}
		return nil, err
	}
	applications, err := s.store.ListByTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []model.Application{}
	}
	return applications, nil
}

// ListByCompany returns the principal company's own outbound bids.
func (s *ApplicationService) ListByCompany(ctx context.Context, principal model.Principal) ([]model.Application, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	applications, err := s.store.ListByCompany(ctx, principal.CompanyID)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []model.Application{}
	}
	return applications, nil
}

// ExportByTender renders the owner's application list as a spreadsheet.
func (s *ApplicationService) ExportByTender(ctx context.Context, principal model.Principal, tenderID uuid.UUID) (*ExportResult, error) {
	report, err := s.buildReport(ctx, principal, tenderID)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildExportFileName(report, "xlsx"), Content: content}, nil
}

// ExportByTenderPDF renders the same report as a PDF document.
func (s *ApplicationService) ExportByTenderPDF(ctx context.Context, principal model.Principal, tenderID uuid.UUID) (*ExportResult, error) {
	report, err := s.buildReport(ctx, principal, tenderID)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildExportFileName(report, "pdf"), Content: content}, nil
}

func (s *ApplicationService) buildReport(ctx context.Context, principal model.Principal, tenderID uuid.UUID) (*model.ApplicationReport, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	tender, err := s.tenders.GetOwned(ctx, tenderID, principal.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tender", ErrNotFound)
		}
		return nil, err
	}
	owner, err := s.companies.GetByID(ctx, tender.CompanyID)
	if err != nil {
		return nil, err
	}
	applications, err := s.store.ListByTenderDetailed(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	return &model.ApplicationReport{
		Tender:       *tender,
		Owner:        *owner,
		Applications: applications,
		GeneratedAt:  time.Now(),
	}, nil
}

func buildExportFileName(report *model.ApplicationReport, ext string) string {
	name := sanitizeFileName(report.Tender.Title)
	if name == "" {
		name = report.Tender.ID.String()
	}
	return fmt.Sprintf("applications-%s-%s.%s", name, report.GeneratedAt.Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}

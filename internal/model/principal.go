package model

import "github.com/google/uuid"

// Principal is the verified identity of a caller, extracted from a bearer
// token. It is the only authorization context the services accept.
type Principal struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil || p.CompanyID == uuid.Nil
}

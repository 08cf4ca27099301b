package quote

import "github.com/Vibe-Web-Agency/dashboard/internal/httperr"

// ===============================
// Quote Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ===============================
// Validations
// ===============================

// Tout statut est atteignable depuis tout autre, par action explicite de
// l'opérateur uniquement. Pas de transition automatique.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func Parse(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return s, nil
}

func InitialStatus() Status {
	return StatusPending
}

package model

import "time"

// Signature token lifecycle. pending → validated → signed; a token is
// invalidated when a newer one is issued for the same contract.
const (
	AssinaturaStatusPending     = "pending"
	AssinaturaStatusValidated   = "validated"
	AssinaturaStatusSigned      = "signed"
	AssinaturaStatusInvalidated = "invalidated"
)

// AssinaturaContrato is the capability that authorizes anonymous access
// to one contract's signing flow. At most one row per contract may be
// in a non-terminal state (pending/validated) — enforced by a partial
// unique index created in infra.NewDatabase.
type AssinaturaContrato struct {
	ID         uint      `gorm:"primaryKey"`
	Token      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ContratoID uint      `gorm:"index;not null"`
	Contrato   *Contrato `gorm:"foreignKey:ContratoID"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	// TentativasValidacao counts failed identity-fragment checks. The
	// increment is issued as a SQL expression, never read-modify-write.
	TentativasValidacao int `gorm:"not null;default:0"`
	ValidadoEm          *time.Time
	AssinadoEm          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Viva reports whether the token still occupies the one-live-token slot.
func (a *AssinaturaContrato) Viva() bool {
	return a.Status == AssinaturaStatusPending || a.Status == AssinaturaStatusValidated
}

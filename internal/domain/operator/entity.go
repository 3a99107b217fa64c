package operator

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operator is a staff member who can be assigned to events.
type Operator struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     *string
	TaxCode         *string
	DefaultRateCost *decimal.Decimal
	DefaultRateSell *decimal.Decimal
	IsActive        bool
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (o Operator) FullName() string {
	return o.FirstName + " " + o.LastName
}

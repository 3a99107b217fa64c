package client

import "time"

// Client is a company that books events and gets billed for them.
type Client struct {
	ID           string
	Name         string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	VATNumber    *string
	Address      *string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Package models defines the core data structures for plots, users,
// contacts, registrations, and inquiries.
package models

import "time"

// PlotFacings are the compass values accepted for a plot's entrance orientation.
var PlotFacings = []string{
	"North",
	"South",
	"East",
	"West",
	"North-East",
	"North-West",
	"South-East",
	"South-West",
}

// Plot status lifecycle values.
const (
	StatusAvailable        = "Available"
	StatusReserved         = "Reserved"
	StatusSold             = "Sold"
	StatusUnderNegotiation = "Under Negotiation"
)

// User roles. Exactly one Owner record is expected to exist.
const (
	RoleOwner = "Owner"
	RoleUser  = "User"
)

// Contact types.
const (
	ContactSeller = "Seller"
	ContactBuyer  = "Buyer"
)

// Plot represents a parcel of land listed for sale.
type Plot struct {
	// ID is the unique identifier for the plot.
	ID string `json:"id"`
	// PlotNumber is the free-text plot number. The pair
	// (PlotNumber, VillageName) is unique case-insensitively.
	PlotNumber string `json:"plotNumber"`
	// VillageName is the village the plot belongs to.
	VillageName string `json:"villageName"`
	// AreaName is the locality or layout name.
	AreaName string `json:"areaName"`
	// PlotSize is free text, expected to contain a leading numeric
	// token (e.g. "2400 sqft").
	PlotSize string `json:"plotSize"`
	// PlotFacing is one of the eight compass values in PlotFacings.
	PlotFacing string `json:"plotFacing"`
	// ImageURL is a self-contained data URL holding the plot image.
	ImageURL string `json:"imageUrl"`
	// ImageHint is a free-text tag describing the image.
	ImageHint string `json:"imageHint"`
	// Description is optional marketing text.
	Description string `json:"description,omitempty"`
	// Price is the asking price, if listed.
	Price *float64 `json:"price,omitempty"`
	// PricePerSqft is derived from Price and the leading numeric token
	// of PlotSize; absent when either is missing.
	PricePerSqft *float64 `json:"pricePerSqft,omitempty"`
	// PriceNegotiable indicates the owner will consider offers.
	PriceNegotiable bool `json:"priceNegotiable"`
	// Status is one of the plot status values, default Available.
	Status string `json:"status"`
}

// User represents a dashboard login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credential is a stored password hash, keyed by email (not user id).
type Credential struct {
	Email          string    `json:"email"`
	HashedPassword string    `json:"hashedPassword"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Identity is the minimal authenticated view of a user carried in
// session tokens and request contexts. It never includes the hash.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Inquiry is a message sent by a visitor about a specific plot.
type Inquiry struct {
	ID         string    `json:"id"`
	PlotNumber string    `json:"plotNumber"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Contact is a seller or buyer record managed from the dashboard.
// Email is unique case-insensitively across contacts.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

// Registration is a lead-capture record from a prospective buyer.
// Email is unique case-insensitively across registrations.
type Registration struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	// IsNew is set on creation and batch-cleared when the
	// registrations view is visited.
	IsNew bool `json:"isNew"`
}

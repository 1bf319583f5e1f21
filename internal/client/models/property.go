package models

import "time"

// PropertyStatus tracks a property's availability on the backend.
type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "AVAILABLE"
	PropertyRented      PropertyStatus = "RENTED"
	PropertyMaintenance PropertyStatus = "MAINTENANCE"
)

// Property is a rental unit as returned by /api/properties.
type Property struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	State           string         `json:"state"`
	ZipCode         string         `json:"zipCode"`
	RentAmount      float64        `json:"rentAmount"`
	SecurityDeposit float64        `json:"securityDeposit"`
	Bedrooms        int            `json:"bedrooms"`
	Bathrooms       int            `json:"bathrooms"`
	SquareFootage   int            `json:"squareFootage"`
	PropertyType    string         `json:"propertyType"`
	PetsAllowed     bool           `json:"petsAllowed"`
	Status          PropertyStatus `json:"status"`
	AvailableDate   time.Time      `json:"availableDate"`
	LeaseTermMonths int            `json:"leaseTermMonths"`
}

// ListingStatus tracks the lifecycle of a published listing.
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingInactive ListingStatus = "INACTIVE"
	ListingExpired  ListingStatus = "EXPIRED"
)

// Listing is a published offer for a property, as returned by /api/listings.
type Listing struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	RentAmount      float64       `json:"rentAmount"`
	SecurityDeposit float64       `json:"securityDeposit"`
	LeaseTermMonths int           `json:"leaseTermMonths"`
	Status          ListingStatus `json:"status"`
	PropertyID      int64         `json:"propertyId"`
	AvailableDate   time.Time     `json:"availableDate"`
	ExpiresAt       time.Time     `json:"expiresAt"`
}

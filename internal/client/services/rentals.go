package services

import (
	"context"
	"fmt"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/models"
)

// RentalService exposes the property, listing, payment, and dashboard
// reads the views consume.
type RentalService interface {
	Properties(ctx context.Context) ([]models.Property, error)
	Property(ctx context.Context, id int64) (*models.Property, error)
	CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error)
	Listings(ctx context.Context) ([]models.Listing, error)
	Payments(ctx context.Context) ([]models.Payment, float64, error)
	CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	Profile(ctx context.Context) (*models.User, error)
}

type rentalService struct {
	client api.Client
}

func NewRentalService(client api.Client) RentalService {
	return &rentalService{client: client}
}

func (s *rentalService) Properties(ctx context.Context) ([]models.Property, error) {
	return s.client.ListProperties(ctx)
}

func (s *rentalService) Property(ctx context.Context, id int64) (*models.Property, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid property id %d", id)
	}
	return s.client.GetProperty(ctx, id)
}

func (s *rentalService) CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	if p == nil || p.Title == "" {
		return nil, fmt.Errorf("property needs a title")
	}
	if p.RentAmount <= 0 {
		return nil, fmt.Errorf("invalid rent amount %.2f", p.RentAmount)
	}
	return s.client.CreateProperty(ctx, p)
}

func (s *rentalService) Listings(ctx context.Context) ([]models.Listing, error) {
	return s.client.ListListings(ctx)
}

// Payments returns all payments plus the outstanding total (pending and
// overdue amounts), which the payments view shows as a headline figure.
func (s *rentalService) Payments(ctx context.Context) ([]models.Payment, float64, error) {
	payments, err := s.client.ListPayments(ctx)
	if err != nil {
		return nil, 0, err
	}

	var outstanding float64
	for _, p := range payments {
		if p.Status == models.PaymentPending || p.Status == models.PaymentOverdue {
			total := p.TotalAmount
			if total == 0 {
				total = p.Amount + p.LateFee
			}
			outstanding += total
		}
	}
	return payments, outstanding, nil
}

// CreatePayment records a payment against a property. The backend assigns
// the reference and computes totals; the client only validates the obvious.
func (s *rentalService) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if p == nil || p.PropertyID <= 0 {
		return nil, fmt.Errorf("payment needs a property id")
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", p.Amount)
	}
	return s.client.CreatePayment(ctx, p)
}

func (s *rentalService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	return s.client.Dashboard(ctx)
}

func (s *rentalService) Profile(ctx context.Context) (*models.User, error) {
	return s.client.Profile(ctx)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/proaim/proaimctl/internal/client/models"
)

func (c *HTTPClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/properties/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPost, "/properties", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := c.do(ctx, http.MethodGet, "/listings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/models"
)

// AdminService exposes the user-administration operations behind the
// ADMIN-only view. The backend enforces the role again server-side.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid user id %d", id)
	}
	return s.client.DeleteUser(ctx, id)
}

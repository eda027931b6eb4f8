package repository

import (
	"context"
	"time"

	"mbogamarket/internal/domain/entity"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdateSubscription(ctx context.Context, id string, status entity.SubscriptionStatus, ends *time.Time) error
	Delete(ctx context.Context, id string) error
}

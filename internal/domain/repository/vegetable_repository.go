package repository

import (
	"context"

	"mbogamarket/internal/domain/entity"
)

type VegetableRepository interface {
	Create(ctx context.Context, vegetable *entity.Vegetable) error
	GetByID(ctx context.Context, id string) (*entity.Vegetable, error)
	List(ctx context.Context, inStockOnly bool) ([]*entity.Vegetable, error)
	ListByVendorID(ctx context.Context, vendorID string) ([]*entity.Vegetable, error)
	Update(ctx context.Context, vegetable *entity.Vegetable) error
	Delete(ctx context.Context, id string) error
	DeleteByVendorID(ctx context.Context, vendorID string) error
}

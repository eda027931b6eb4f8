package usecase

import (
	"context"
	"time"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/errors"
)

type AdminUseCase struct {
	adminRepo     repository.AdminRepository
	vendorRepo    repository.VendorRepository
	vegetableRepo repository.VegetableRepository
}

func NewAdminUseCase(adminRepo repository.AdminRepository, vendorRepo repository.VendorRepository, vegetableRepo repository.VegetableRepository) *AdminUseCase {
	return &AdminUseCase{
		adminRepo:     adminRepo,
		vendorRepo:    vendorRepo,
		vegetableRepo: vegetableRepo,
	}
}

func (uc *AdminUseCase) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := uc.vendorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []*entity.Vendor{}
	}
	return vendors, nil
}

// DeleteVendor cascades: every vegetable referencing the vendor goes first,
// then the vendor row. If clearing the vegetables fails the vendor row is
// left in place, so no vegetable ever dangles without its vendor.
func (uc *AdminUseCase) DeleteVendor(ctx context.Context, vendorID string) error {
	if _, err := uc.vendorRepo.GetByID(ctx, vendorID); err != nil {
		return err
	}

	if err := uc.vegetableRepo.DeleteByVendorID(ctx, vendorID); err != nil {
		return err
	}

	return uc.vendorRepo.Delete(ctx, vendorID)
}

type SetSubscriptionInput struct {
	Status entity.SubscriptionStatus
	Ends   *time.Time
}

// SetSubscription toggles the vendor's tier. An end date only makes sense
// while the subscription is active; deactivating clears it.
func (uc *AdminUseCase) SetSubscription(ctx context.Context, vendorID string, input SetSubscriptionInput) error {
	if input.Status != entity.SubscriptionActive && input.Status != entity.SubscriptionInactive {
		return errors.Validation("status must be active or inactive", nil)
	}

	ends := input.Ends
	if input.Status == entity.SubscriptionInactive {
		ends = nil
	}

	return uc.vendorRepo.UpdateSubscription(ctx, vendorID, input.Status, ends)
}

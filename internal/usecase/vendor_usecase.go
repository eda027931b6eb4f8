package usecase

import (
	"context"
	"time"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/errors"
	"mbogamarket/pkg/logger"
)

type VendorUseCase struct {
	vendorRepo    repository.VendorRepository
	vegetableRepo repository.VegetableRepository
	uploader      ImageUploader
}

func NewVendorUseCase(vendorRepo repository.VendorRepository, vegetableRepo repository.VegetableRepository, uploader ImageUploader) *VendorUseCase {
	return &VendorUseCase{
		vendorRepo:    vendorRepo,
		vegetableRepo: vegetableRepo,
		uploader:      uploader,
	}
}

func (uc *VendorUseCase) GetProfile(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

type UpdateProfileInput struct {
	Name           string
	StoreName      string
	Location       string
	Bio            string
	Phone          string
	Email          string
	ProfilePicture string
}

// UpdateProfile writes the submitted draft over the stored profile. A
// pending picture is uploaded first and its URL replaces ProfilePicture; an
// upload failure aborts the submission with nothing written. Identity,
// join date and subscription fields are never touched here.
func (uc *VendorUseCase) UpdateProfile(ctx context.Context, vendorID string, input UpdateProfileInput, picture *ImageUpload) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	previousPicture := vendor.ProfilePicture
	if picture != nil {
		url, err := uc.uploader.UploadImage(ctx, picture.Reader, picture.Filename, "profiles")
		if err != nil {
			return nil, errors.Storage("Failed to upload profile picture", err)
		}
		input.ProfilePicture = url
	}

	vendor.Name = input.Name
	vendor.StoreName = input.StoreName
	vendor.Location = input.Location
	vendor.Bio = input.Bio
	vendor.Contact.Phone = input.Phone
	vendor.Contact.Email = input.Email
	if input.ProfilePicture != "" {
		vendor.ProfilePicture = input.ProfilePicture
	}

	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	// The replaced blob is orphaned once the row points at the new upload;
	// clearing it is best-effort.
	if picture != nil && previousPicture != "" && previousPicture != vendor.ProfilePicture {
		if err := uc.uploader.DeleteImage(ctx, previousPicture); err != nil {
			logger.Warn("failed to delete replaced profile picture %s: %v", previousPicture, err)
		}
	}

	return vendor, nil
}

type SubscriptionInfo struct {
	Status entity.SubscriptionStatus `json:"status"`
	Ends   *time.Time                `json:"ends,omitempty"`
}

func (uc *VendorUseCase) GetSubscription(ctx context.Context, vendorID string) (*SubscriptionInfo, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionInfo{
		Status: vendor.SubscriptionStatus,
		Ends:   vendor.SubscriptionEnds,
	}, nil
}

// ListMyVegetables returns exactly the vegetables owned by the signed-in
// vendor.
func (uc *VendorUseCase) ListMyVegetables(ctx context.Context, vendorID string) ([]*entity.Vegetable, error) {
	vegetables, err := uc.vegetableRepo.ListByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vegetables == nil {
		vegetables = []*entity.Vegetable{}
	}
	return vegetables, nil
}

type VegetableInput struct {
	Name        string
	Price       float64
	Unit        string
	Image       string
	Description string
	InStock     bool
}

func (uc *VendorUseCase) CreateVegetable(ctx context.Context, vendorID string, input VegetableInput, image *ImageUpload) (*entity.Vegetable, error) {
	if image != nil {
		url, err := uc.uploader.UploadImage(ctx, image.Reader, image.Filename, "vegetables")
		if err != nil {
			return nil, errors.Storage("Failed to upload image", err)
		}
		input.Image = url
	}

	vegetable := &entity.Vegetable{
		Name:        input.Name,
		Price:       input.Price,
		Unit:        input.Unit,
		Image:       input.Image,
		Description: input.Description,
		InStock:     input.InStock,
		VendorID:    vendorID,
	}

	if err := uc.vegetableRepo.Create(ctx, vegetable); err != nil {
		return nil, err
	}

	return vegetable, nil
}

// UpdateVegetable overwrites the listing with the submitted draft. The
// owning vendor never changes; only the owner may edit.
func (uc *VendorUseCase) UpdateVegetable(ctx context.Context, vendorID, id string, input VegetableInput, image *ImageUpload) (*entity.Vegetable, error) {
	vegetable, err := uc.vegetableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vegetable.VendorID != vendorID {
		return nil, errors.Forbidden("You can only edit your own listings", nil)
	}

	previousImage := vegetable.Image
	if image != nil {
		url, err := uc.uploader.UploadImage(ctx, image.Reader, image.Filename, "vegetables")
		if err != nil {
			return nil, errors.Storage("Failed to upload image", err)
		}
		input.Image = url
	}

	vegetable.Name = input.Name
	vegetable.Price = input.Price
	vegetable.Unit = input.Unit
	vegetable.Description = input.Description
	vegetable.InStock = input.InStock
	if input.Image != "" {
		vegetable.Image = input.Image
	}

	if err := uc.vegetableRepo.Update(ctx, vegetable); err != nil {
		return nil, err
	}

	if image != nil && previousImage != "" && previousImage != vegetable.Image {
		if err := uc.uploader.DeleteImage(ctx, previousImage); err != nil {
			logger.Warn("failed to delete replaced image %s: %v", previousImage, err)
		}
	}

	return vegetable, nil
}

func (uc *VendorUseCase) DeleteVegetable(ctx context.Context, vendorID, id string) error {
	vegetable, err := uc.vegetableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vegetable.VendorID != vendorID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}

	return uc.vegetableRepo.Delete(ctx, id)
}

package handler_test

import (
	"context"
	"io"
	"time"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/pkg/errors"
)

// Function-field stubs for the repository and gateway interfaces; tests set
// only the calls they expect to see.

type stubVegetableRepo struct {
	create           func(ctx context.Context, v *entity.Vegetable) error
	getByID          func(ctx context.Context, id string) (*entity.Vegetable, error)
	list             func(ctx context.Context, inStockOnly bool) ([]*entity.Vegetable, error)
	listByVendorID   func(ctx context.Context, vendorID string) ([]*entity.Vegetable, error)
	update           func(ctx context.Context, v *entity.Vegetable) error
	delete           func(ctx context.Context, id string) error
	deleteByVendorID func(ctx context.Context, vendorID string) error
}

func (s *stubVegetableRepo) Create(ctx context.Context, v *entity.Vegetable) error {
	return s.create(ctx, v)
}

func (s *stubVegetableRepo) GetByID(ctx context.Context, id string) (*entity.Vegetable, error) {
	return s.getByID(ctx, id)
}

func (s *stubVegetableRepo) List(ctx context.Context, inStockOnly bool) ([]*entity.Vegetable, error) {
	return s.list(ctx, inStockOnly)
}

func (s *stubVegetableRepo) ListByVendorID(ctx context.Context, vendorID string) ([]*entity.Vegetable, error) {
	return s.listByVendorID(ctx, vendorID)
}

func (s *stubVegetableRepo) Update(ctx context.Context, v *entity.Vegetable) error {
	return s.update(ctx, v)
}

func (s *stubVegetableRepo) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *stubVegetableRepo) DeleteByVendorID(ctx context.Context, vendorID string) error {
	return s.deleteByVendorID(ctx, vendorID)
}

type stubVendorRepo struct {
	getByID func(ctx context.Context, id string) (*entity.Vendor, error)
	list    func(ctx context.Context) ([]*entity.Vendor, error)
}

func (s *stubVendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	return nil
}

func (s *stubVendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	if s.getByID == nil {
		return nil, errors.NotFound("Vendor", nil)
	}
	return s.getByID(ctx, id)
}

func (s *stubVendorRepo) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return nil, errors.NotFound("Vendor", nil)
}

func (s *stubVendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list(ctx)
}

func (s *stubVendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	return nil
}

func (s *stubVendorRepo) UpdateSubscription(ctx context.Context, id string, status entity.SubscriptionStatus, ends *time.Time) error {
	return nil
}

func (s *stubVendorRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubUploader struct {
	upload func(ctx context.Context, file io.Reader, originalFilename, folder string) (string, error)
}

func (s *stubUploader) UploadImage(ctx context.Context, file io.Reader, originalFilename, folder string) (string, error) {
	if s.upload == nil {
		return "https://storage.googleapis.com/bucket/vegetables/stub.jpg", nil
	}
	return s.upload(ctx, file, originalFilename, folder)
}

func (s *stubUploader) DeleteImage(ctx context.Context, fileURL string) error {
	return nil
}

package usecase_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"mbogamarket/internal/domain/entity"
)

type mockVegetableRepo struct {
	mock.Mock
}

func (m *mockVegetableRepo) Create(ctx context.Context, vegetable *entity.Vegetable) error {
	args := m.Called(ctx, vegetable)
	return args.Error(0)
}

func (m *mockVegetableRepo) GetByID(ctx context.Context, id string) (*entity.Vegetable, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vegetable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVegetableRepo) List(ctx context.Context, inStockOnly bool) ([]*entity.Vegetable, error) {
	args := m.Called(ctx, inStockOnly)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Vegetable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVegetableRepo) ListByVendorID(ctx context.Context, vendorID string) ([]*entity.Vegetable, error) {
	args := m.Called(ctx, vendorID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Vegetable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVegetableRepo) Update(ctx context.Context, vegetable *entity.Vegetable) error {
	args := m.Called(ctx, vegetable)
	return args.Error(0)
}

func (m *mockVegetableRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVegetableRepo) DeleteByVendorID(ctx context.Context, vendorID string) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

type mockVendorRepo struct {
	mock.Mock
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *mockVendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *mockVendorRepo) UpdateSubscription(ctx context.Context, id string, status entity.SubscriptionStatus, ends *time.Time) error {
	args := m.Called(ctx, id, status, ends)
	return args.Error(0)
}

func (m *mockVendorRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *mockAuthClient) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *mockAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockAuthClient) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *mockAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadImage(ctx context.Context, file io.Reader, originalFilename, folder string) (string, error) {
	args := m.Called(ctx, file, originalFilename, folder)
	return args.String(0), args.Error(1)
}

func (m *mockUploader) DeleteImage(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

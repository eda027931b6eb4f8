package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/usecase"
	"mbogamarket/pkg/errors"
)

func browseFixtures() []*entity.Vegetable {
	return []*entity.Vegetable{
		{ID: "v1", Name: "Fresh Spinach", Description: "Leafy greens", InStock: true, VendorID: "ven1"},
		{ID: "v2", Name: "Green Kale", Description: "Curly and crisp", InStock: false, VendorID: "ven1"},
	}
}

func inStockOnly(all []*entity.Vegetable) []*entity.Vegetable {
	var out []*entity.Vegetable
	for _, v := range all {
		if v.InStock {
			out = append(out, v)
		}
	}
	return out
}

func TestBrowseNoFilters(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, false).Return(browseFixtures(), nil)

	uc := usecase.NewCatalogUseCase(vegRepo, new(mockVendorRepo))

	result, err := uc.Browse(context.Background(), "", false)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBrowseStockGateExcludesOutOfStock(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, true).Return(inStockOnly(browseFixtures()), nil)

	uc := usecase.NewCatalogUseCase(vegRepo, new(mockVendorRepo))

	result, err := uc.Browse(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Fresh Spinach", result[0].Name)
}

func TestBrowseSearchIsCaseInsensitiveSubstring(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, false).Return(browseFixtures(), nil)

	uc := usecase.NewCatalogUseCase(vegRepo, new(mockVendorRepo))

	result, err := uc.Browse(context.Background(), "kale", false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Green Kale", result[0].Name)
}

func TestBrowseSearchMatchesDescription(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, false).Return(browseFixtures(), nil)

	uc := usecase.NewCatalogUseCase(vegRepo, new(mockVendorRepo))

	result, err := uc.Browse(context.Background(), "curly", false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Green Kale", result[0].Name)
}

func TestBrowseSearchAndStockGateCompose(t *testing.T) {
	// The stock gate is applied first; a search hit that is out of stock
	// must not survive the gated listing.
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, true).Return(inStockOnly(browseFixtures()), nil)

	uc := usecase.NewCatalogUseCase(vegRepo, new(mockVendorRepo))

	result, err := uc.Browse(context.Background(), "kale", true)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetProductDetailFetchesVendorAfterVegetable(t *testing.T) {
	vegetable := &entity.Vegetable{ID: "v1", Name: "Fresh Spinach", VendorID: "ven1", InStock: true}
	vendor := &entity.Vendor{ID: "ven1", Name: "Mama Wanjiku", StoreName: "Wanjiku Greens"}

	vegRepo := new(mockVegetableRepo)
	vegRepo.On("GetByID", mock.Anything, "v1").Return(vegetable, nil)
	vegRepo.On("List", mock.Anything, false).Return([]*entity.Vegetable{
		vegetable,
		{ID: "v2", Name: "Green Kale", VendorID: "ven1"},
		{ID: "v3", Name: "Red Onion", VendorID: "ven2"},
	}, nil)

	vendorRepo := new(mockVendorRepo)
	vendorRepo.On("GetByID", mock.Anything, "ven1").Return(vendor, nil)

	uc := usecase.NewCatalogUseCase(vegRepo, vendorRepo)

	detail, err := uc.GetProductDetail(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, vegetable, detail.Vegetable)
	assert.Equal(t, vendor, detail.Vendor)
	assert.Empty(t, detail.VendorError)

	// Related never contains the vegetable itself.
	require.Len(t, detail.Related, 2)
	for _, r := range detail.Related {
		assert.NotEqual(t, "v1", r.ID)
	}
}

func TestGetProductDetailVendorFailureKeepsVegetable(t *testing.T) {
	vegetable := &entity.Vegetable{ID: "v1", Name: "Fresh Spinach", VendorID: "ven1"}

	vegRepo := new(mockVegetableRepo)
	vegRepo.On("GetByID", mock.Anything, "v1").Return(vegetable, nil)
	vegRepo.On("List", mock.Anything, false).Return([]*entity.Vegetable{vegetable}, nil)

	vendorRepo := new(mockVendorRepo)
	vendorRepo.On("GetByID", mock.Anything, "ven1").Return(nil, errors.Network("Failed to get vendor", nil))

	uc := usecase.NewCatalogUseCase(vegRepo, vendorRepo)

	detail, err := uc.GetProductDetail(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, vegetable, detail.Vegetable)
	assert.Nil(t, detail.Vendor)
	assert.NotEmpty(t, detail.VendorError)
}

func TestGetProductDetailNotFound(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("GetByID", mock.Anything, "missing").Return(nil, errors.NotFound("Vegetable", nil))

	vendorRepo := new(mockVendorRepo)

	uc := usecase.NewCatalogUseCase(vegRepo, vendorRepo)

	_, err := uc.GetProductDetail(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	vendorRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetFeaturedLimitsSubsets(t *testing.T) {
	vegRepo := new(mockVegetableRepo)
	vegRepo.On("List", mock.Anything, false).Return([]*entity.Vegetable{
		{ID: "v1"}, {ID: "v2"}, {ID: "v3"}, {ID: "v4"}, {ID: "v5"},
	}, nil)

	vendorRepo := new(mockVendorRepo)
	vendorRepo.On("List", mock.Anything).Return([]*entity.Vendor{
		{ID: "ven1"}, {ID: "ven2"}, {ID: "ven3"},
	}, nil)

	uc := usecase.NewCatalogUseCase(vegRepo, vendorRepo)

	featured, err := uc.GetFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured.Vegetables, 4)
	assert.Len(t, featured.Vendors, 2)
}

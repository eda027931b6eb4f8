package usecase

import (
	"context"
	"strings"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/logger"
)

const (
	featuredVegetableCount = 4
	featuredVendorCount    = 2
	relatedCount           = 4
)

type CatalogUseCase struct {
	vegetableRepo repository.VegetableRepository
	vendorRepo    repository.VendorRepository
}

func NewCatalogUseCase(vegetableRepo repository.VegetableRepository, vendorRepo repository.VendorRepository) *CatalogUseCase {
	return &CatalogUseCase{
		vegetableRepo: vegetableRepo,
		vendorRepo:    vendorRepo,
	}
}

// Browse lists vegetables for the public catalog. The stock gate is applied
// at the store, then the search term narrows by case-insensitive substring
// over name and description; the two compose as a logical AND.
func (uc *CatalogUseCase) Browse(ctx context.Context, query string, inStockOnly bool) ([]*entity.Vegetable, error) {
	vegetables, err := uc.vegetableRepo.List(ctx, inStockOnly)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return vegetables, nil
	}

	term := strings.ToLower(query)
	matched := make([]*entity.Vegetable, 0, len(vegetables))
	for _, v := range vegetables {
		if strings.Contains(strings.ToLower(v.Name), term) ||
			strings.Contains(strings.ToLower(v.Description), term) {
			matched = append(matched, v)
		}
	}

	return matched, nil
}

type ProductDetail struct {
	Vegetable *entity.Vegetable `json:"vegetable"`
	Vendor    *entity.Vendor    `json:"vendor,omitempty"`
	// VendorError carries a vendor lookup failure without discarding the
	// already-fetched vegetable.
	VendorError string              `json:"vendorError,omitempty"`
	Related     []*entity.Vegetable `json:"related"`
}

// GetProductDetail loads one vegetable, then its vendor. The vendor fetch
// only runs once the vegetable is found, and its failure is reported
// alongside the vegetable rather than replacing it.
func (uc *CatalogUseCase) GetProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	vegetable, err := uc.vegetableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{
		Vegetable: vegetable,
		Related:   []*entity.Vegetable{},
	}

	vendor, err := uc.vendorRepo.GetByID(ctx, vegetable.VendorID)
	if err != nil {
		detail.VendorError = "Vendor information is unavailable"
		logger.Warn("vendor %s lookup failed for vegetable %s: %v", vegetable.VendorID, id, err)
	} else {
		detail.Vendor = vendor
	}

	all, err := uc.vegetableRepo.List(ctx, false)
	if err != nil {
		logger.Warn("related listing failed for vegetable %s: %v", id, err)
		return detail, nil
	}
	for _, v := range all {
		if v.ID == vegetable.ID {
			continue
		}
		detail.Related = append(detail.Related, v)
		if len(detail.Related) == relatedCount {
			break
		}
	}

	return detail, nil
}

type FeaturedContent struct {
	Vegetables []*entity.Vegetable `json:"vegetables"`
	Vendors    []*entity.Vendor    `json:"vendors"`
}

// GetFeatured returns the landing-page subsets: the newest vegetables and
// vendors.
func (uc *CatalogUseCase) GetFeatured(ctx context.Context) (*FeaturedContent, error) {
	vegetables, err := uc.vegetableRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(vegetables) > featuredVegetableCount {
		vegetables = vegetables[:featuredVegetableCount]
	}

	vendors, err := uc.vendorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(vendors) > featuredVendorCount {
		vendors = vendors[:featuredVendorCount]
	}

	if vegetables == nil {
		vegetables = []*entity.Vegetable{}
	}
	if vendors == nil {
		vendors = []*entity.Vendor{}
	}

	return &FeaturedContent{
		Vegetables: vegetables,
		Vendors:    vendors,
	}, nil
}

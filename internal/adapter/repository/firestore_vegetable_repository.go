package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/errors"
)

const vegetablesCollection = "vegetables"

type firestoreVegetableRepository struct {
	client *firestore.Client
}

func NewFirestoreVegetableRepository(client *firestore.Client) repository.VegetableRepository {
	return &firestoreVegetableRepository{
		client: client,
	}
}

func (r *firestoreVegetableRepository) Create(ctx context.Context, vegetable *entity.Vegetable) error {
	if vegetable.ID == "" {
		doc := r.client.Collection(vegetablesCollection).NewDoc()
		vegetable.ID = doc.ID
	}
	if vegetable.CreatedAt.IsZero() {
		vegetable.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(vegetablesCollection).Doc(vegetable.ID).Set(ctx, vegetableToRow(vegetable))
	if err != nil {
		return errors.Network("Failed to create vegetable", err)
	}

	return nil
}

func (r *firestoreVegetableRepository) GetByID(ctx context.Context, id string) (*entity.Vegetable, error) {
	doc, err := r.client.Collection(vegetablesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vegetable", err)
		}
		return nil, errors.Network("Failed to get vegetable", err)
	}

	var row vegetableRow
	if err := doc.DataTo(&row); err != nil {
		return nil, errors.Internal("Failed to parse vegetable data", err)
	}

	return vegetableFromRow(&row), nil
}

func (r *firestoreVegetableRepository) List(ctx context.Context, inStockOnly bool) ([]*entity.Vegetable, error) {
	query := r.client.Collection(vegetablesCollection).Query
	if inStockOnly {
		query = query.Where("in_stock", "==", true)
	}
	query = query.OrderBy("created_at", firestore.Desc)

	return r.collect(query.Documents(ctx))
}

func (r *firestoreVegetableRepository) ListByVendorID(ctx context.Context, vendorID string) ([]*entity.Vegetable, error) {
	query := r.client.Collection(vegetablesCollection).
		Where("vendor_id", "==", vendorID).
		OrderBy("created_at", firestore.Desc)

	return r.collect(query.Documents(ctx))
}

func (r *firestoreVegetableRepository) Update(ctx context.Context, vegetable *entity.Vegetable) error {
	_, err := r.client.Collection(vegetablesCollection).Doc(vegetable.ID).Set(ctx, vegetableToRow(vegetable))
	if err != nil {
		return errors.Network("Failed to update vegetable", err)
	}

	return nil
}

func (r *firestoreVegetableRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(vegetablesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Network("Failed to delete vegetable", err)
	}

	return nil
}

// DeleteByVendorID removes every vegetable owned by the vendor. Used by the
// admin cascade, which must clear children before the vendor row goes.
func (r *firestoreVegetableRepository) DeleteByVendorID(ctx context.Context, vendorID string) error {
	iter := r.client.Collection(vegetablesCollection).Where("vendor_id", "==", vendorID).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Network("Failed to iterate vendor vegetables", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Network("Failed to delete vendor vegetable", err)
		}
	}

	return nil
}

func (r *firestoreVegetableRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Vegetable, error) {
	var vegetables []*entity.Vegetable

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Network("Failed to iterate vegetables", err)
		}

		var row vegetableRow
		if err := doc.DataTo(&row); err != nil {
			return nil, errors.Internal("Failed to parse vegetable data", err)
		}
		vegetables = append(vegetables, vegetableFromRow(&row))
	}

	return vegetables, nil
}

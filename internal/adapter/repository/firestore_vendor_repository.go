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

const vendorsCollection = "vendors"

type firestoreVendorRepository struct {
	client *firestore.Client
}

func NewFirestoreVendorRepository(client *firestore.Client) repository.VendorRepository {
	return &firestoreVendorRepository{
		client: client,
	}
}

func (r *firestoreVendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(vendorsCollection).Doc(vendor.ID).Set(ctx, vendorToRow(vendor))
	if err != nil {
		return errors.Network("Failed to create vendor", err)
	}

	return nil
}

func (r *firestoreVendorRepository) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	doc, err := r.client.Collection(vendorsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vendor", err)
		}
		return nil, errors.Network("Failed to get vendor", err)
	}

	var row vendorRow
	if err := doc.DataTo(&row); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return vendorFromRow(&row), nil
}

func (r *firestoreVendorRepository) GetByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	iter := r.client.Collection(vendorsCollection).Where("email", "==", email).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Vendor", nil)
	}
	if err != nil {
		return nil, errors.Network("Failed to look up vendor by email", err)
	}

	var row vendorRow
	if err := doc.DataTo(&row); err != nil {
		return nil, errors.Internal("Failed to parse vendor data", err)
	}

	return vendorFromRow(&row), nil
}

func (r *firestoreVendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	iter := r.client.Collection(vendorsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)

	var vendors []*entity.Vendor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Network("Failed to iterate vendors", err)
		}

		var row vendorRow
		if err := doc.DataTo(&row); err != nil {
			return nil, errors.Internal("Failed to parse vendor data", err)
		}
		vendors = append(vendors, vendorFromRow(&row))
	}

	return vendors, nil
}

func (r *firestoreVendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.client.Collection(vendorsCollection).Doc(vendor.ID).Set(ctx, vendorToRow(vendor))
	if err != nil {
		return errors.Network("Failed to update vendor", err)
	}

	return nil
}

func (r *firestoreVendorRepository) UpdateSubscription(ctx context.Context, id string, subscriptionStatus entity.SubscriptionStatus, ends *time.Time) error {
	updates := []firestore.Update{
		{Path: "subscription_status", Value: string(subscriptionStatus)},
		{Path: "subscription_ends", Value: ends},
	}

	_, err := r.client.Collection(vendorsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Vendor", err)
		}
		return errors.Network("Failed to update subscription", err)
	}

	return nil
}

func (r *firestoreVendorRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(vendorsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Network("Failed to delete vendor", err)
	}

	return nil
}

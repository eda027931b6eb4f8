package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/errors"
)

const adminsCollection = "admins"

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	iter := r.client.Collection(adminsCollection).Where("user_id", "==", userID).Limit(1).Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Network("Failed to check admin status", err)
	}

	return true, nil
}

package repository

import "context"

// AdminRepository is an existence check against the admins table, keyed by
// the authentication subject id.
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

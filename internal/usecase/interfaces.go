package usecase

import (
	"context"
	"io"
)

type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	RevokeSessions(ctx context.Context, uid string) error
	SignInWithEmailPassword(email, password string) (string, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, originalFilename, folder string) (string, error)
	DeleteImage(ctx context.Context, fileURL string) error
}

// ImageUpload is a pending file attached to a form submission. It is
// resolved to a URL before the row write; an upload failure aborts the
// whole submission.
type ImageUpload struct {
	Reader   io.Reader
	Filename string
}

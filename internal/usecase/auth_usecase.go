package usecase

import (
	"context"
	"time"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/domain/repository"
	"mbogamarket/pkg/errors"
	"mbogamarket/pkg/logger"
)

type AuthUseCase struct {
	vendorRepo repository.VendorRepository
	auth       AuthClient
}

func NewAuthUseCase(vendorRepo repository.VendorRepository, auth AuthClient) *AuthUseCase {
	return &AuthUseCase{
		vendorRepo: vendorRepo,
		auth:       auth,
	}
}

type RegisterInput struct {
	Name      string
	StoreName string
	Email     string
	Password  string
	Phone     string
	Location  string
	Bio       string
}

type AuthResult struct {
	Vendor *entity.Vendor
	Token  string
}

// Register creates the authentication identity, then the vendor profile
// keyed by the same id. If the profile insert fails the identity is deleted
// again so a sign-in can never exist without a matching profile. The
// compensating delete is best-effort: its own failure is only logged.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.vendorRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Email already registered", nil)
	}

	uid, err := uc.auth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Unauthorized("Failed to create account", err)
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:        uid,
		Name:      input.Name,
		StoreName: input.StoreName,
		Location:  input.Location,
		Bio:       input.Bio,
		Contact: entity.Contact{
			Phone: input.Phone,
			Email: input.Email,
		},
		JoinDate:           now,
		SubscriptionStatus: entity.SubscriptionInactive,
		CreatedAt:          now,
	}

	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		if delErr := uc.auth.DeleteUser(ctx, uid); delErr != nil {
			logger.Warn("orphaned auth identity %s after failed profile insert: %v", uid, delErr)
		}
		return nil, errors.Network("Failed to create vendor profile", err)
	}

	token, err := uc.auth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Unauthorized("Account created but sign-in failed", err)
	}

	return &AuthResult{
		Vendor: vendor,
		Token:  token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.auth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Failed to verify session", err)
	}

	vendor, err := uc.vendorRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Vendor", err)
	}

	return &AuthResult{
		Vendor: vendor,
		Token:  token,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.auth.RevokeSessions(ctx, uid); err != nil {
		return errors.Internal("Failed to sign out", err)
	}
	return nil
}

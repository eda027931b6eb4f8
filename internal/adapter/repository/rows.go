package repository

import (
	"time"

	"mbogamarket/internal/domain/entity"
)

// Row types mirror the remote schema: snake-cased columns, contact fields
// flattened onto the vendor row. Mapping must be lossless in both
// directions; this file is the only place the two shapes meet.

type vegetableRow struct {
	ID          string    `firestore:"id"`
	Name        string    `firestore:"name"`
	Price       float64   `firestore:"price"`
	Unit        string    `firestore:"unit"`
	Image       string    `firestore:"image"`
	Description string    `firestore:"description"`
	InStock     bool      `firestore:"in_stock"`
	VendorID    string    `firestore:"vendor_id"`
	CreatedAt   time.Time `firestore:"created_at"`
}

type vendorRow struct {
	ID                 string     `firestore:"id"`
	Name               string     `firestore:"name"`
	StoreName          string     `firestore:"store_name"`
	ProfilePicture     string     `firestore:"profile_picture"`
	Location           string     `firestore:"location"`
	Phone              string     `firestore:"phone"`
	Email              string     `firestore:"email"`
	Bio                string     `firestore:"bio"`
	JoinDate           time.Time  `firestore:"join_date"`
	SubscriptionStatus string     `firestore:"subscription_status"`
	SubscriptionEnds   *time.Time `firestore:"subscription_ends,omitempty"`
	CreatedAt          time.Time  `firestore:"created_at"`
}

func vegetableToRow(v *entity.Vegetable) *vegetableRow {
	return &vegetableRow{
		ID:          v.ID,
		Name:        v.Name,
		Price:       v.Price,
		Unit:        v.Unit,
		Image:       v.Image,
		Description: v.Description,
		InStock:     v.InStock,
		VendorID:    v.VendorID,
		CreatedAt:   v.CreatedAt,
	}
}

func vegetableFromRow(r *vegetableRow) *entity.Vegetable {
	return &entity.Vegetable{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Unit:        r.Unit,
		Image:       r.Image,
		Description: r.Description,
		InStock:     r.InStock,
		VendorID:    r.VendorID,
		CreatedAt:   r.CreatedAt,
	}
}

func vendorToRow(v *entity.Vendor) *vendorRow {
	return &vendorRow{
		ID:                 v.ID,
		Name:               v.Name,
		StoreName:          v.StoreName,
		ProfilePicture:     v.ProfilePicture,
		Location:           v.Location,
		Phone:              v.Contact.Phone,
		Email:              v.Contact.Email,
		Bio:                v.Bio,
		JoinDate:           v.JoinDate,
		SubscriptionStatus: string(v.SubscriptionStatus),
		SubscriptionEnds:   v.SubscriptionEnds,
		CreatedAt:          v.CreatedAt,
	}
}

func vendorFromRow(r *vendorRow) *entity.Vendor {
	return &entity.Vendor{
		ID:             r.ID,
		Name:           r.Name,
		StoreName:      r.StoreName,
		ProfilePicture: r.ProfilePicture,
		Location:       r.Location,
		Contact: entity.Contact{
			Phone: r.Phone,
			Email: r.Email,
		},
		Bio:                r.Bio,
		JoinDate:           r.JoinDate,
		SubscriptionStatus: entity.SubscriptionStatus(r.SubscriptionStatus),
		SubscriptionEnds:   r.SubscriptionEnds,
		CreatedAt:          r.CreatedAt,
	}
}

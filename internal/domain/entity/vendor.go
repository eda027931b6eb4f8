package entity

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Vendor is paired 1:1 with an authentication identity: the ID equals the
// auth subject id for registered vendors. JoinDate is set once at
// registration. SubscriptionEnds is only meaningful while the subscription
// is active and is absent otherwise.
type Vendor struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	StoreName          string             `json:"storeName"`
	ProfilePicture     string             `json:"profilePicture"`
	Location           string             `json:"location"`
	Contact            Contact            `json:"contact"`
	Bio                string             `json:"bio"`
	JoinDate           time.Time          `json:"joinDate"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionEnds   *time.Time         `json:"subscriptionEnds,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

package models

import (
	"fmt"
	"time"
)

// Role is the marketplace side a user signed up for
type Role string

const (
	RoleBuyer        Role = "buyer"
	RoleEntrepreneur Role = "entrepreneur"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleEntrepreneur
}

// BidStatus is the lifecycle state of a placed bid
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
)

// ParseBidStatus maps a stored status to the enum. Documents written before the
// status field existed carry no value and are pending; anything else unknown is an error.
func ParseBidStatus(raw string) (BidStatus, error) {
	switch BidStatus(raw) {
	case "", BidStatusPending:
		return BidStatusPending, nil
	case BidStatusAccepted:
		return BidStatusAccepted, nil
	default:
		return "", fmt.Errorf("unrecognised bid status %q", raw)
	}
}

// NotificationStatus tracks whether an entrepreneur has seen a notification
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// BidPosting is a job listing created by a buyer
type BidPosting struct {
	ID             string    `json:"id" bson:"_id" firestore:"-"`
	Name           string    `json:"name" bson:"name" firestore:"name"`
	Address        string    `json:"address" bson:"address" firestore:"address"`
	Description    string    `json:"description" bson:"description" firestore:"description"`
	Categories     string    `json:"categories" bson:"categories" firestore:"categories"`
	Image          string    `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	ImagePath      string    `json:"image_path,omitempty" bson:"imagePath,omitempty" firestore:"imagePath,omitempty"`
	BidClosingTime time.Time `json:"bid_closing_time" bson:"bidClosingTime" firestore:"bidClosingTime"`
	UserID         string    `json:"user_id" bson:"userId" firestore:"userId"`
	UserEmail      string    `json:"user_email" bson:"userEmail" firestore:"userEmail"`
	CreatedAt      time.Time `json:"created_at" bson:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updatedAt" firestore:"updatedAt"`
}

// Open reports whether the posting still accepts bids at the given instant
func (p BidPosting) Open(at time.Time) bool {
	return at.Before(p.BidClosingTime)
}

// PostingUpdate carries the fields of an edit; nil fields are left untouched
type PostingUpdate struct {
	Name           *string
	Address        *string
	Description    *string
	Categories     *string
	Image          *string
	ImagePath      *string
	BidClosingTime *time.Time
	UpdatedAt      time.Time
}

// PostingFilter narrows a posting listing; zero values match everything
type PostingFilter struct {
	OwnerID  string
	Category string
	OpenAt   *time.Time
}

// PlacedBid is an entrepreneur's proposal against a posting
type PlacedBid struct {
	ID             string    `json:"id" bson:"_id" firestore:"-"`
	BidID          string    `json:"bid_id" bson:"bidId" firestore:"bidId"`
	EntrepreneurID string    `json:"entrepreneur_id" bson:"entrepreneurId" firestore:"entrepreneurId"`
	Amount         float64   `json:"amount" bson:"amount" firestore:"amount"`
	OwnerID        string    `json:"owner_id" bson:"ownerId" firestore:"ownerId"`
	Status         BidStatus `json:"status" bson:"status,omitempty" firestore:"status,omitempty"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp" firestore:"timestamp"`
}

// PlacedBidFilter narrows a placed bid query; empty fields are ignored
type PlacedBidFilter struct {
	BidID          string
	EntrepreneurID string
	OwnerID        string
}

// BuyerNotification tells a buyer that a bid arrived on one of their postings
type BuyerNotification struct {
	ID             string    `json:"id" bson:"_id" firestore:"-"`
	BidID          string    `json:"bid_id" bson:"bidId" firestore:"bidId"`
	OwnerID        string    `json:"owner_id" bson:"ownerId" firestore:"ownerId"`
	EntrepreneurID string    `json:"entrepreneur_id" bson:"entrepreneurId" firestore:"entrepreneurId"`
	Message        string    `json:"message" bson:"message" firestore:"message"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp" firestore:"timestamp"`
}

// BuyerNotificationFilter narrows a buyer notification query
type BuyerNotificationFilter struct {
	OwnerID        string
	BidID          string
	EntrepreneurID string
}

// EntrepreneurNotification tells an entrepreneur that their bid was accepted
type EntrepreneurNotification struct {
	ID             string             `json:"id" bson:"_id" firestore:"-"`
	EntrepreneurID string             `json:"entrepreneur_id" bson:"entrepreneurId" firestore:"entrepreneurId"`
	BuyerID        string             `json:"buyer_id" bson:"buyerId" firestore:"buyerId"`
	BidID          string             `json:"bid_id" bson:"bidId" firestore:"bidId"`
	Message        string             `json:"message" bson:"message" firestore:"message"`
	Status         NotificationStatus `json:"status" bson:"status" firestore:"status"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp" firestore:"timestamp"`
}

// EntrepreneurNotificationFilter narrows an entrepreneur notification query
type EntrepreneurNotificationFilter struct {
	EntrepreneurID string
	BidID          string
}

// NotificationView is the role-independent shape returned by the inbox
type NotificationView struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	BidID     string    `json:"bid_id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	Unread    bool      `json:"unread"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	NotificationKindBidReceived = "bid_received"
	NotificationKindBidAccepted = "bid_accepted"
)

// Profile merges the users record with the role-specific record
type Profile struct {
	UID          string    `json:"uid" bson:"_id" firestore:"uid"`
	Email        string    `json:"email" bson:"email" firestore:"email"`
	Username     string    `json:"username" bson:"username" firestore:"username"`
	PhoneNumber  string    `json:"phone_number,omitempty" bson:"phoneNumber,omitempty" firestore:"phoneNumber,omitempty"`
	Role         Role      `json:"role" bson:"role" firestore:"role"`
	ProfileImage string    `json:"profile_image,omitempty" bson:"profileImage,omitempty" firestore:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt" firestore:"createdAt"`
}

// DisplayName returns the username, or fallback when none was set
func (p Profile) DisplayName(fallback string) string {
	if p.Username == "" {
		return fallback
	}
	return p.Username
}

// Category is a posting category offered in the create form
type Category struct {
	ID   string `json:"id" bson:"_id" firestore:"-"`
	Name string `json:"name" bson:"name" firestore:"name"`
}

// Session is the authenticated caller of a request
type Session struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     Role   `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
}

// Authenticated reports whether the session carries an identity
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

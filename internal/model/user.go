package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mirrors the identity provider's record. It is written by webhook
// events and lazily on first authenticated call; ClerkID is the external
// subject id and the only stable key.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	ClerkID      string               `bson:"clerkId" json:"clerkId"`
	Email        string               `bson:"email" json:"email"`
	Name         string               `bson:"name" json:"name"`
	Phone        string               `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageURL     string               `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Wishlist     []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	OrderHistory []primitive.ObjectID `bson:"orderHistory" json:"orderHistory"`
	CreatedAt    time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

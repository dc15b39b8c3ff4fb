package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in a Product or Service document. The author block is a
// snapshot taken at submission time; ClerkID decides who may delete it.
type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	User      ReviewAuthor       `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Images    []string           `bson:"images" json:"images"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type ReviewAuthor struct {
	Name    string `bson:"name" json:"name"`
	Avatar  string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	ClerkID string `bson:"clerkId" json:"clerkId"`
}

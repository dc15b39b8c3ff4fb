package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable offering (consultation, interior design, renovation).
// Reviews embed the same way they do on Product.
type Service struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Category      string             `bson:"category" json:"category"`
	Description   string             `bson:"description" json:"description"`
	Price         string             `bson:"price" json:"price"`
	WhatsIncluded []string           `bson:"whatsIncluded" json:"whatsIncluded"`
	Images        []string           `bson:"images" json:"images"`
	Duration      string             `bson:"duration" json:"duration"`
	Status        string             `bson:"status" json:"status"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

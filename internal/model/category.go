package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category supports a self-referential hierarchy through Parent. ProductCount
// is derived by aggregation on read and never stored.
type Category struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Status      string              `bson:"status" json:"status"`
	Parent      *primitive.ObjectID `bson:"parent,omitempty" json:"parent,omitempty"`
	Image       string              `bson:"image,omitempty" json:"image,omitempty"`

	ProductCount int       `bson:"productCount,omitempty" json:"productCount"`
	Products     []Product `bson:"products,omitempty" json:"products,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

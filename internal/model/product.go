package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Price struct {
	Original   float64  `bson:"original" json:"original"`
	Discounted *float64 `bson:"discounted,omitempty" json:"discounted,omitempty"`
}

type Dimensions struct {
	Height float64 `bson:"height,omitempty" json:"height,omitempty"`
	Width  float64 `bson:"width,omitempty" json:"width,omitempty"`
	Depth  float64 `bson:"depth,omitempty" json:"depth,omitempty"`
	Unit   string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

// Product carries the category name denormalized so listings can filter
// without a join. Stock is only ever mutated by payment finalization.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     primitive.ObjectID `bson:"category" json:"category"`
	CategoryName string             `bson:"categoryName" json:"categoryName"`
	Price        Price              `bson:"price" json:"price"`
	Stock        int                `bson:"stock" json:"stock"`
	Dimensions   Dimensions         `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Material     []string           `bson:"material,omitempty" json:"material,omitempty"`
	Images       []string           `bson:"images" json:"images"`
	Status       string             `bson:"status" json:"status"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status transitions implemented in this codebase: pending→processing
// on successful verification, pending→cancelled on signature failure.
// shipped/delivered exist in the enum but nothing sets them yet.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	// PaymentMethodOnline collects the full total through the gateway.
	PaymentMethodOnline = "online"
	// PaymentMethodCOD collects 25% upfront, the rest on delivery.
	PaymentMethodCOD = "cod"
)

type OrderUser struct {
	ClerkID  string `bson:"clerkId" json:"clerkId"`
	Email    string `bson:"email" json:"email"`
	FullName string `bson:"fullName" json:"fullName"`
}

// OrderItem is a snapshot of the product at order-creation time. Later
// product edits must not alter historical orders.
type OrderItem struct {
	ProductID     primitive.ObjectID `bson:"productId" json:"productId"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	SelectedColor string             `bson:"selectedColor,omitempty" json:"selectedColor,omitempty"`
}

type ShippingAddress struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type OrderPricing struct {
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
	Shipping float64 `bson:"shipping" json:"shipping"`
	Tax      float64 `bson:"tax" json:"tax"`
	Total    float64 `bson:"total" json:"total"`
}

// Payment records the gateway correlation fields, which stay empty until
// verification succeeds.
type Payment struct {
	Method            string `bson:"method" json:"method"`
	Status            string `bson:"status" json:"status"`
	RazorpayOrderID   string `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `bson:"razorpayPaymentId,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string `bson:"razorpaySignature,omitempty" json:"razorpaySignature,omitempty"`
}

// Order represents one purchase attempt. OrderID is the human-readable code
// handed to the buyer, distinct from the storage id.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	User            OrderUser          `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	Pricing         OrderPricing       `bson:"pricing" json:"pricing"`
	Payment         Payment            `bson:"payment" json:"payment"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package dto

import "velvethome-backend/internal/model"

// --- checkout ---

type CheckoutProduct struct {
	ID     string   `json:"_id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Price  struct {
		Original float64 `json:"original"`
	} `json:"price"`
}

type CheckoutItem struct {
	Product       CheckoutProduct `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedColor string          `json:"selectedColor,omitempty"`
}

type CheckoutForm struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"` // online | cod
}

type CheckoutPricing struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type CheckoutRequest struct {
	FormData CheckoutForm    `json:"formData"`
	Items    []CheckoutItem  `json:"items"`
	Pricing  CheckoutPricing `json:"pricing"`
}

// GatewayOrder is the handle returned by the payment gateway, echoed back to
// the client so it can open the payment widget.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Status   string `json:"status,omitempty"`
}

type CheckoutResponse struct {
	Order         *model.Order  `json:"order"`
	RazorpayOrder *GatewayOrder `json:"razorpayOrder"`
}

// --- payment verification ---

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}

type VerifyPaymentResponse struct {
	OrderID string `json:"orderId"`
}

// --- wishlist ---

type WishlistRequest struct {
	ProductID string `json:"productId"`
	Action    string `json:"action"` // add | remove
}

// --- reviews ---

type AddReviewRequest struct {
	Rating  int      `json:"rating"`
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"` // base64-encoded payloads
}

type DeleteReviewRequest struct {
	ReviewID string `json:"reviewId"`
}

// --- leads ---

type LeadRequest struct {
	CustomerName      string `json:"customerName"`
	Email             string `json:"email"`
	MobileNumber      string `json:"mobileNumber"`
	PreferredDate     string `json:"preferredDate"`
	TimeSlot          string `json:"timeSlot"`
	ProjectType       string `json:"projectType"`
	BudgetRange       string `json:"budgetRange"`
	AdditionalMessage string `json:"additionalMessage"`
}

// --- product listing ---

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
}

// --- identity-provider webhook ---

type WebhookEmail struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type WebhookPhone struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type WebhookUserData struct {
	ID                    string         `json:"id"`
	EmailAddresses        []WebhookEmail `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	PhoneNumbers          []WebhookPhone `json:"phone_numbers"`
	PrimaryPhoneNumberID  string         `json:"primary_phone_number_id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	ImageURL              string         `json:"image_url"`
}

type UserWebhookEvent struct {
	Type string          `json:"type"`
	Data WebhookUserData `json:"data"`
}

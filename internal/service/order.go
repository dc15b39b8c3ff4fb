package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/client"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

// codRatio is the upfront share collected for cash-on-delivery orders.
var codRatio = decimal.NewFromFloat(0.25)

type OrderService interface {
	ListOrders(ctx context.Context, identity model.Identity) ([]*model.Order, error)
	// Checkout creates the gateway order for the payable amount and persists
	// a pending order snapshotting the cart. Nothing is persisted when the
	// gateway call fails.
	Checkout(ctx context.Context, identity model.Identity, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// VerifyPayment checks the gateway callback signature and finalizes the
	// order: processing/paid on a match, cancelled/failed on a mismatch.
	VerifyPayment(ctx context.Context, identity model.Identity, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
}

type orderServiceImpl struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	gateway       client.RazorpayClient
	paymentSecret string
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	gateway client.RazorpayClient,
	paymentSecret string,
) OrderService {
	return &orderServiceImpl{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		gateway:       gateway,
		paymentSecret: paymentSecret,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, identity model.Identity) ([]*model.Order, error) {
	orders, err := s.orderRepo.FindByClerkID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("find orders for user: %w", err)
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	return orders, nil
}

func (s *orderServiceImpl) Checkout(ctx context.Context, identity model.Identity, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.Product.ID)
		if err != nil {
			return nil, apperr.Validation("Invalid product ID format.")
		}
		image := ""
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		items[i] = model.OrderItem{
			ProductID:     productID,
			Name:          item.Product.Name,
			Image:         image,
			Price:         item.Product.Price.Original,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
		}
	}

	payable := payableAmount(req.FormData.PaymentMethod, req.Pricing.Total)
	receipt := fmt.Sprintf("receipt_order_%d", time.Now().UnixMilli())

	gatewayOrder, err := s.gateway.CreateOrder(ctx, minorUnits(payable), receipt)
	if err != nil {
		return nil, apperr.Upstream("Failed to create payment order.", err)
	}

	order := &model.Order{
		OrderID: newOrderCode(),
		User: model.OrderUser{
			ClerkID:  identity.ID,
			Email:    req.FormData.Email,
			FullName: strings.TrimSpace(req.FormData.FirstName + " " + req.FormData.LastName),
		},
		Items: items,
		ShippingAddress: model.ShippingAddress{
			Address: req.FormData.Address,
			City:    req.FormData.City,
			State:   req.FormData.State,
			ZipCode: req.FormData.ZipCode,
			Country: req.FormData.Country,
		},
		// The breakdown is taken from the client as-is; the total is not
		// recomputed from line items here. Known trust gap, kept on purpose
		// pending a product decision.
		Pricing: model.OrderPricing{
			Subtotal: req.Pricing.Subtotal,
			Shipping: req.Pricing.Shipping,
			Tax:      req.Pricing.Tax,
			Total:    req.Pricing.Total,
		},
		Payment: model.Payment{
			Method:          req.FormData.PaymentMethod,
			Status:          model.PaymentStatusPending,
			RazorpayOrderID: gatewayOrder.ID,
		},
		Status: model.OrderStatusPending,
	}

	saved, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if err := s.userRepo.PushOrder(ctx, identity.ID, saved.ID); err != nil {
		return nil, fmt.Errorf("append order to user history: %w", err)
	}

	return &dto.CheckoutResponse{Order: saved, RazorpayOrder: gatewayOrder}, nil
}

func (s *orderServiceImpl) VerifyPayment(ctx context.Context, identity model.Identity, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" || req.OrderID == "" {
		return nil, apperr.Validation("Missing payment verification fields.")
	}
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return nil, apperr.Validation("Invalid order ID format.")
	}

	expected := expectedSignature(s.paymentSecret, req.RazorpayOrderID, req.RazorpayPaymentID)
	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySignature)) {
		// Flip the order so it can never be fulfilled off a forged callback.
		if err := s.orderRepo.MarkFailed(ctx, orderID); err != nil {
			slog.Error("mark order failed after signature mismatch", "orderId", req.OrderID, "error", err)
		}
		return nil, apperr.InvalidSignature("Invalid payment signature.")
	}

	order, err := s.orderRepo.MarkPaid(ctx, orderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the order does not exist or it already left pending; a
		// replayed verification must not decrement stock or touch history
		// a second time.
		return nil, apperr.NotFound("Order not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("finalize order: %w", err)
	}

	// Per-product updates are independent and not transactional with the
	// order update above; a failure here leaves the order paid with stale
	// stock, which is logged rather than rolled back.
	for _, item := range order.Items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("decrement stock", "orderId", order.OrderID, "productId", item.ProductID.Hex(), "error", err)
		}
	}

	if err := s.userRepo.PushOrder(ctx, identity.ID, order.ID); err != nil {
		slog.Error("append order to user history", "orderId", order.OrderID, "error", err)
	}

	return &dto.VerifyPaymentResponse{OrderID: order.ID.Hex()}, nil
}

func validateCheckout(req *dto.CheckoutRequest) error {
	if len(req.Items) == 0 {
		return apperr.Validation("At least one item is required.")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return apperr.Validation("Item quantity must be positive.")
		}
	}
	form := req.FormData
	if form.Email == "" || form.Address == "" || form.City == "" || form.State == "" || form.ZipCode == "" || form.Country == "" {
		return apperr.Validation("Shipping address is incomplete.")
	}
	if form.PaymentMethod != model.PaymentMethodOnline && form.PaymentMethod != model.PaymentMethodCOD {
		return apperr.Validation("Unsupported payment method.")
	}
	return nil
}

func payableAmount(method string, total float64) float64 {
	if method == model.PaymentMethodCOD {
		amount, _ := decimal.NewFromFloat(total).Mul(codRatio).Float64()
		return amount
	}
	return total
}

// minorUnits converts an amount to the gateway's smallest currency unit,
// rounded to the nearest integer.
func minorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// expectedSignature is the gateway's callback MAC: HMAC-SHA256 over
// "<gateway order id>|<gateway payment id>" with the key secret, hex-encoded.
func expectedSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

// In-memory stand-ins for the mongo-backed repositories. They implement only
// as much behavior as the services observe.

type fakeOrderRepo struct {
	inserted  []*model.Order
	insertErr error
	orders    []*model.Order
	paid      *model.Order
	paidErr   error
	failedIDs []primitive.ObjectID
}

func (f *fakeOrderRepo) Insert(_ context.Context, order *model.Order) (*model.Order, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	order.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, order)
	return order, nil
}

func (f *fakeOrderRepo) FindByClerkID(_ context.Context, _ string) ([]*model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, id primitive.ObjectID, paymentID, signature string) (*model.Order, error) {
	if f.paidErr != nil {
		return nil, f.paidErr
	}
	if f.paid == nil || f.paid.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	f.paid.Payment.Status = model.PaymentStatusPaid
	f.paid.Payment.RazorpayPaymentID = paymentID
	f.paid.Payment.RazorpaySignature = signature
	f.paid.Status = model.OrderStatusProcessing
	return f.paid, nil
}

func (f *fakeOrderRepo) MarkFailed(_ context.Context, id primitive.ObjectID) error {
	f.failedIDs = append(f.failedIDs, id)
	return nil
}

type fakeProductRepo struct {
	products    map[primitive.ObjectID]*model.Product
	findResult  []*model.Product
	findTotal   int64
	featured    []*repository.FeaturedProduct
	decremented map[primitive.ObjectID]int
	pushed      []*model.Review
	pulled      []primitive.ObjectID
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:    map[primitive.ObjectID]*model.Product{},
		decremented: map[primitive.ObjectID]int{},
	}
}

func (f *fakeProductRepo) Find(_ context.Context, _ repository.ProductFilter) ([]*model.Product, int64, error) {
	return f.findResult, f.findTotal, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return product, nil
}

func (f *fakeProductRepo) FindManyByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	result := []*model.Product{}
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, id primitive.ObjectID, quantity int) error {
	f.decremented[id] += quantity
	return nil
}

func (f *fakeProductRepo) PushReview(_ context.Context, _ primitive.ObjectID, review *model.Review) error {
	f.pushed = append(f.pushed, review)
	return nil
}

func (f *fakeProductRepo) PullReview(_ context.Context, _, reviewID primitive.ObjectID) error {
	f.pulled = append(f.pulled, reviewID)
	return nil
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, _ []string) ([]*repository.FeaturedProduct, error) {
	return f.featured, nil
}

type fakeServiceRepo struct {
	services map[primitive.ObjectID]*model.Service
	active   []*model.Service
	pushed   []*model.Review
	pulled   []primitive.ObjectID
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[primitive.ObjectID]*model.Service{}}
}

func (f *fakeServiceRepo) FindActive(_ context.Context) ([]*model.Service, error) {
	return f.active, nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return svc, nil
}

func (f *fakeServiceRepo) PushReview(_ context.Context, _ primitive.ObjectID, review *model.Review) error {
	f.pushed = append(f.pushed, review)
	return nil
}

func (f *fakeServiceRepo) PullReview(_ context.Context, _, reviewID primitive.ObjectID) error {
	f.pulled = append(f.pulled, reviewID)
	return nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (f *fakeCategoryRepo) FindActive(_ context.Context, _ bool) ([]*model.Category, error) {
	return f.categories, nil
}

type fakeUserRepo struct {
	users        map[string]*model.User
	pushedOrders map[string][]primitive.ObjectID
	ensured      []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        map[string]*model.User{},
		pushedOrders: map[string][]primitive.ObjectID{},
	}
}

func (f *fakeUserRepo) FindByClerkID(_ context.Context, clerkID string) (*model.User, error) {
	user, ok := f.users[clerkID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, user *model.User) (bool, error) {
	_, existed := f.users[user.ClerkID]
	f.users[user.ClerkID] = user
	return !existed, nil
}

func (f *fakeUserRepo) EnsureExists(_ context.Context, user *model.User) error {
	f.ensured = append(f.ensured, user.ClerkID)
	if _, ok := f.users[user.ClerkID]; !ok {
		f.users[user.ClerkID] = user
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, clerkID string) (bool, error) {
	_, existed := f.users[clerkID]
	delete(f.users, clerkID)
	return existed, nil
}

func (f *fakeUserRepo) PushOrder(_ context.Context, clerkID string, orderID primitive.ObjectID) error {
	f.pushedOrders[clerkID] = append(f.pushedOrders[clerkID], orderID)
	return nil
}

func (f *fakeUserRepo) UpdateWishlist(_ context.Context, clerkID string, productID primitive.ObjectID, add bool) (*model.User, error) {
	user, ok := f.users[clerkID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	wishlist := []primitive.ObjectID{}
	for _, id := range user.Wishlist {
		if id != productID {
			wishlist = append(wishlist, id)
		}
	}
	if add {
		wishlist = append(wishlist, productID)
	}
	user.Wishlist = wishlist
	return user, nil
}

type fakeLeadRepo struct {
	inserted []*model.Lead
}

func (f *fakeLeadRepo) Insert(_ context.Context, lead *model.Lead) (*model.Lead, error) {
	lead.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, lead)
	return lead, nil
}

type fakeGateway struct {
	order       *dto.GatewayOrder
	err         error
	lastAmount  int64
	lastReceipt string
	calls       int
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, receipt string) (*dto.GatewayOrder, error) {
	f.calls++
	f.lastAmount = amountMinor
	f.lastReceipt = receipt
	if f.err != nil {
		return nil, f.err
	}
	if f.order != nil {
		return f.order, nil
	}
	return &dto.GatewayOrder{ID: "order_test123", Amount: amountMinor, Currency: "INR", Receipt: receipt, Status: "created"}, nil
}

type fakeUploader struct {
	err     error
	folders []string
}

func (f *fakeUploader) UploadBase64(_ context.Context, _, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.folders = append(f.folders, folder)
	return "https://res.example.com/" + folder + "/image.jpg", nil
}

package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velvethome-backend/internal/model"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	FindByClerkID(ctx context.Context, clerkID string) ([]*model.Order, error)
	// MarkPaid finalizes an order that is still pending: payment goes to paid,
	// status to processing, and the gateway correlation fields are stored.
	// An order already out of pending does not match, which is what makes
	// replayed verification calls no-ops.
	MarkPaid(ctx context.Context, id primitive.ObjectID, paymentID, signature string) (*model.Order, error)
	MarkFailed(ctx context.Context, id primitive.ObjectID) error
}

type orderRepoImpl struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepoImpl{col: db.Collection("orders")}
}

func (r *orderRepoImpl) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *orderRepoImpl) FindByClerkID(ctx context.Context, clerkID string) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user.clerkId": clerkID}, opts)
	if err != nil {
		return nil, err
	}

	var orders []*model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, id primitive.ObjectID, paymentID, signature string) (*model.Order, error) {
	filter := bson.M{"_id": id, "status": model.OrderStatusPending}
	update := bson.M{"$set": bson.M{
		"payment.status":            model.PaymentStatusPaid,
		"payment.razorpayPaymentId": paymentID,
		"payment.razorpaySignature": signature,
		"status":                    model.OrderStatusProcessing,
		"updatedAt":                 time.Now(),
	}}

	var order model.Order
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"payment.status": model.PaymentStatusFailed,
		"status":         model.OrderStatusCancelled,
		"updatedAt":      time.Now(),
	}}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

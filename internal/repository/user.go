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

type UserRepository interface {
	FindByClerkID(ctx context.Context, clerkID string) (*model.User, error)
	// Upsert writes the mirrored identity record, creating it when absent.
	// Returns true when a new document was created.
	Upsert(ctx context.Context, user *model.User) (bool, error)
	// EnsureExists creates the mirror from token claims if the webhook has not
	// delivered it yet; an existing document is left untouched.
	EnsureExists(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, clerkID string) (bool, error)
	PushOrder(ctx context.Context, clerkID string, orderID primitive.ObjectID) error
	UpdateWishlist(ctx context.Context, clerkID string, productID primitive.ObjectID, add bool) (*model.User, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepoImpl{col: db.Collection("users")}
}

func (r *userRepoImpl) FindByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"clerkId": clerkID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) Upsert(ctx context.Context, user *model.User) (bool, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"email":     user.Email,
			"name":      user.Name,
			"phone":     user.Phone,
			"imageUrl":  user.ImageURL,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"clerkId":      user.ClerkID,
			"wishlist":     []primitive.ObjectID{},
			"orderHistory": []primitive.ObjectID{},
			"createdAt":    now,
		},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"clerkId": user.ClerkID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *userRepoImpl) EnsureExists(ctx context.Context, user *model.User) error {
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"clerkId":      user.ClerkID,
			"email":        user.Email,
			"name":         user.Name,
			"phone":        user.Phone,
			"imageUrl":     user.ImageURL,
			"wishlist":     []primitive.ObjectID{},
			"orderHistory": []primitive.ObjectID{},
			"createdAt":    now,
			"updatedAt":    now,
		},
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"clerkId": user.ClerkID}, update,
		options.Update().SetUpsert(true))
	return err
}

func (r *userRepoImpl) Delete(ctx context.Context, clerkID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"clerkId": clerkID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *userRepoImpl) PushOrder(ctx context.Context, clerkID string, orderID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"orderHistory": orderID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"clerkId": clerkID}, update,
		options.Update().SetUpsert(true))
	return err
}

func (r *userRepoImpl) UpdateWishlist(ctx context.Context, clerkID string, productID primitive.ObjectID, add bool) (*model.User, error) {
	// $addToSet/$pull keep wishlist membership a single-document set update,
	// so concurrent toggles never read-modify-write.
	var update bson.M
	if add {
		update = bson.M{"$addToSet": bson.M{"wishlist": productID}}
	} else {
		update = bson.M{"$pull": bson.M{"wishlist": productID}}
	}

	var user model.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"clerkId": clerkID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

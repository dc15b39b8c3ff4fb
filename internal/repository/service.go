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

type ServiceRepository interface {
	FindActive(ctx context.Context) ([]*model.Service, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Service, error)
	PushReview(ctx context.Context, id primitive.ObjectID, review *model.Review) error
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error
}

type serviceRepoImpl struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) ServiceRepository {
	return &serviceRepoImpl{col: db.Collection("services")}
}

func (r *serviceRepoImpl) FindActive(ctx context.Context) ([]*model.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"status": model.StatusActive}, opts)
	if err != nil {
		return nil, err
	}

	var services []*model.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Service, error) {
	var svc model.Service
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepoImpl) PushReview(ctx context.Context, id primitive.ObjectID, review *model.Review) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"reviews": review},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *serviceRepoImpl) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/model"
)

type LeadRepository interface {
	Insert(ctx context.Context, lead *model.Lead) (*model.Lead, error)
}

type leadRepoImpl struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) LeadRepository {
	return &leadRepoImpl{col: db.Collection("leads")}
}

func (r *leadRepoImpl) Insert(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, lead)
	if err != nil {
		return nil, err
	}
	lead.ID = res.InsertedID.(primitive.ObjectID)
	return lead, nil
}

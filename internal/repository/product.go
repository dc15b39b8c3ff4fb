package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velvethome-backend/internal/model"
)

// ProductFilter mirrors the query surface of the product listing endpoint.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string // price-low | price-high | name, default newest first
	Limit    int
	Page     int
}

// FeaturedProduct pairs a featured category with its most recent product.
type FeaturedProduct struct {
	Category string        `bson:"category" json:"category"`
	Product  model.Product `bson:"product" json:"product"`
}

type ProductRepository interface {
	Find(ctx context.Context, filter ProductFilter) ([]*model.Product, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error)
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
	PushReview(ctx context.Context, id primitive.ObjectID, review *model.Review) error
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	FindFeatured(ctx context.Context, categories []string) ([]*FeaturedProduct, error)
}

type productRepoImpl struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepoImpl{col: db.Collection("products")}
}

func (r *productRepoImpl) Find(ctx context.Context, filter ProductFilter) ([]*model.Product, int64, error) {
	query := bson.M{}
	if filter.Category != "" && filter.Category != "All" {
		query["categoryName"] = filter.Category
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		priceQuery := bson.M{}
		if filter.MinPrice != nil {
			priceQuery["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			priceQuery["$lte"] = *filter.MaxPrice
		}
		query["price.original"] = priceQuery
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch filter.SortBy {
	case "price-low":
		sort = bson.D{{Key: "price.original", Value: 1}}
	case "price-high":
		sort = bson.D{{Key: "price.original", Value: -1}}
	case "name":
		sort = bson.D{{Key: "name", Value: 1}}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sort).
		SetLimit(int64(filter.Limit)).
		SetSkip(int64((filter.Page - 1) * filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	var products []*model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var product model.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepoImpl) FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	if len(ids) == 0 {
		return []*model.Product{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var products []*model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"stock": -quantity}})
	return err
}

func (r *productRepoImpl) PushReview(ctx context.Context, id primitive.ObjectID, review *model.Review) error {
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

func (r *productRepoImpl) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
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

func (r *productRepoImpl) FindFeatured(ctx context.Context, categories []string) ([]*FeaturedProduct, error) {
	// Case-insensitive match, then the newest product per normalized name.
	patterns := make([]primitive.Regex, len(categories))
	for i, cat := range categories {
		patterns[i] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(cat) + "$", Options: "i"}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"categoryName": bson.M{"$in": patterns}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$toLower": bson.M{"$trim": bson.M{"input": "$categoryName"}}},
			"latestProduct": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"category": "$latestProduct.categoryName",
			"product":  "$latestProduct",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var featured []*FeaturedProduct
	if err := cur.All(ctx, &featured); err != nil {
		return nil, err
	}
	return featured, nil
}

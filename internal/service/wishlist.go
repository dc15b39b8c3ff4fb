package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

const (
	WishlistActionAdd    = "add"
	WishlistActionRemove = "remove"
)

type WishlistService interface {
	// Get resolves the caller's wishlist references to full products.
	Get(ctx context.Context, identity model.Identity) ([]*model.Product, error)
	// Toggle adds or removes one product with set semantics and returns the
	// updated reference list.
	Toggle(ctx context.Context, identity model.Identity, req *dto.WishlistRequest) ([]primitive.ObjectID, error)
}

type wishlistServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewWishlistService(userRepo repository.UserRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (s *wishlistServiceImpl) Get(ctx context.Context, identity model.Identity) ([]*model.Product, error) {
	if err := s.ensureMirror(ctx, identity); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByClerkID(ctx, identity.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []*model.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	products, err := s.productRepo.FindManyByIDs(ctx, user.Wishlist)
	if err != nil {
		return nil, fmt.Errorf("resolve wishlist products: %w", err)
	}
	return products, nil
}

func (s *wishlistServiceImpl) Toggle(ctx context.Context, identity model.Identity, req *dto.WishlistRequest) ([]primitive.ObjectID, error) {
	if req.ProductID == "" || req.Action == "" {
		return nil, apperr.Validation("Product ID and action are required.")
	}
	if req.Action != WishlistActionAdd && req.Action != WishlistActionRemove {
		return nil, apperr.Validation("Invalid action.")
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, apperr.Validation("Invalid product ID format.")
	}

	if err := s.ensureMirror(ctx, identity); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateWishlist(ctx, identity.ID, productID, req.Action == WishlistActionAdd)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("User not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("update wishlist: %w", err)
	}
	return user.Wishlist, nil
}

func (s *wishlistServiceImpl) ensureMirror(ctx context.Context, identity model.Identity) error {
	err := s.userRepo.EnsureExists(ctx, &model.User{
		ClerkID:  identity.ID,
		Email:    identity.Email,
		Name:     identity.Name,
		ImageURL: identity.Avatar,
	})
	if err != nil {
		return fmt.Errorf("ensure user mirror: %w", err)
	}
	return nil
}

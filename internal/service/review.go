package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/client"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

// ReviewService appends and removes embedded reviews on products and
// services. The two sides are symmetric; only the backing collection and the
// upload folder differ.
type ReviewService interface {
	AddProductReview(ctx context.Context, identity model.Identity, productID string, req *dto.AddReviewRequest) (*model.Review, error)
	DeleteProductReview(ctx context.Context, identity model.Identity, productID, reviewID string) error
	AddServiceReview(ctx context.Context, identity model.Identity, serviceID string, req *dto.AddReviewRequest) (*model.Review, error)
	DeleteServiceReview(ctx context.Context, identity model.Identity, serviceID, reviewID string) error
}

type reviewServiceImpl struct {
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	uploader    client.CloudinaryClient
}

func NewReviewService(
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	uploader client.CloudinaryClient,
) ReviewService {
	return &reviewServiceImpl{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}
}

func (s *reviewServiceImpl) AddProductReview(ctx context.Context, identity model.Identity, productID string, req *dto.AddReviewRequest) (*model.Review, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, apperr.NotFound("Product not found.")
	}
	if err := s.ensureMirror(ctx, identity); err != nil {
		return nil, err
	}
	if err := validateReview(req); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Product not found.")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	review, err := s.buildReview(ctx, identity, req, "reviews/"+productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.PushReview(ctx, id, review); err != nil {
		return nil, fmt.Errorf("append product review: %w", err)
	}
	return review, nil
}

func (s *reviewServiceImpl) DeleteProductReview(ctx context.Context, identity model.Identity, productID, reviewID string) error {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return apperr.NotFound("Product not found.")
	}
	if reviewID == "" {
		return apperr.Validation("Review ID is required.")
	}
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return apperr.NotFound("Review not found.")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Product not found.")
	}
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}

	if err := authorizeDeletion(product.Reviews, rid, identity); err != nil {
		return err
	}
	if err := s.productRepo.PullReview(ctx, id, rid); err != nil {
		return fmt.Errorf("remove product review: %w", err)
	}
	return nil
}

func (s *reviewServiceImpl) AddServiceReview(ctx context.Context, identity model.Identity, serviceID string, req *dto.AddReviewRequest) (*model.Review, error) {
	id, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, apperr.NotFound("Service not found.")
	}
	if err := s.ensureMirror(ctx, identity); err != nil {
		return nil, err
	}
	if err := validateReview(req); err != nil {
		return nil, err
	}

	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Service not found.")
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	review, err := s.buildReview(ctx, identity, req, "service-reviews/"+serviceID)
	if err != nil {
		return nil, err
	}
	if err := s.serviceRepo.PushReview(ctx, id, review); err != nil {
		return nil, fmt.Errorf("append service review: %w", err)
	}
	return review, nil
}

func (s *reviewServiceImpl) DeleteServiceReview(ctx context.Context, identity model.Identity, serviceID, reviewID string) error {
	id, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return apperr.NotFound("Service not found.")
	}
	if reviewID == "" {
		return apperr.Validation("Review ID is required.")
	}
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return apperr.NotFound("Review not found.")
	}

	svc, err := s.serviceRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Service not found.")
	}
	if err != nil {
		return fmt.Errorf("find service: %w", err)
	}

	if err := authorizeDeletion(svc.Reviews, rid, identity); err != nil {
		return err
	}
	if err := s.serviceRepo.PullReview(ctx, id, rid); err != nil {
		return fmt.Errorf("remove service review: %w", err)
	}
	return nil
}

// buildReview uploads the attached images and assembles the review with the
// author snapshot. Any upload failure aborts the whole submission; a review
// is never persisted with a partial image set.
func (s *reviewServiceImpl) buildReview(ctx context.Context, identity model.Identity, req *dto.AddReviewRequest, folder string) (*model.Review, error) {
	urls := make([]string, 0, len(req.Images))
	for _, image := range req.Images {
		url, err := s.uploader.UploadBase64(ctx, image, folder)
		if err != nil {
			return nil, apperr.Upstream("Failed to upload review images.", err)
		}
		urls = append(urls, url)
	}

	name := identity.Name
	if name == "" {
		name = "Anonymous User"
	}

	return &model.Review{
		ID: primitive.NewObjectID(),
		User: model.ReviewAuthor{
			Name:    name,
			Avatar:  identity.Avatar,
			ClerkID: identity.ID,
		},
		Title:     req.Title,
		Body:      req.Comment,
		Images:    urls,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}, nil
}

func (s *reviewServiceImpl) ensureMirror(ctx context.Context, identity model.Identity) error {
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

func validateReview(req *dto.AddReviewRequest) error {
	if req.Rating == 0 || req.Title == "" || req.Comment == "" {
		return apperr.Validation("Rating, title, and comment are required.")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return apperr.Validation("Rating must be between 1 and 5.")
	}
	return nil
}

// authorizeDeletion enforces that only the stored author may delete a review.
func authorizeDeletion(reviews []model.Review, reviewID primitive.ObjectID, identity model.Identity) error {
	for _, review := range reviews {
		if review.ID == reviewID {
			if review.User.ClerkID != identity.ID {
				return apperr.Forbidden("You are not authorized to delete this review.")
			}
			return nil
		}
	}
	return apperr.NotFound("Review not found.")
}

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

// featuredCategories drive the storefront's featured strip: the newest
// product from each of these is surfaced.
var featuredCategories = []string{"Drawing Room", "Bedroom", "Kitchen"}

type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, *dto.Pagination, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	FeaturedProducts(ctx context.Context) ([]*repository.FeaturedProduct, error)
	ListCategories(ctx context.Context, withProducts bool) ([]*model.Category, error)
	ListServices(ctx context.Context) ([]*model.Service, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	serviceRepo  repository.ServiceRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	serviceRepo repository.ServiceRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*model.Product, *dto.Pagination, error) {
	if filter.Limit <= 0 {
		filter.Limit = 12
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	products, total, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("find products: %w", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	pagination := &dto.Pagination{
		CurrentPage:   filter.Page,
		TotalPages:    totalPages,
		TotalProducts: total,
	}
	if products == nil {
		products = []*model.Product{}
	}
	return products, pagination, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("Invalid product ID format.")
	}

	product, err := s.productRepo.FindByID(ctx, objectID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Product not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return product, nil
}

func (s *catalogServiceImpl) FeaturedProducts(ctx context.Context) ([]*repository.FeaturedProduct, error) {
	featured, err := s.productRepo.FindFeatured(ctx, featuredCategories)
	if err != nil {
		return nil, fmt.Errorf("find featured products: %w", err)
	}
	if featured == nil {
		featured = []*repository.FeaturedProduct{}
	}
	return featured, nil
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context, withProducts bool) ([]*model.Category, error) {
	categories, err := s.categoryRepo.FindActive(ctx, withProducts)
	if err != nil {
		return nil, fmt.Errorf("find active categories: %w", err)
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	return categories, nil
}

func (s *catalogServiceImpl) ListServices(ctx context.Context) ([]*model.Service, error) {
	services, err := s.serviceRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find active services: %w", err)
	}
	if services == nil {
		services = []*model.Service{}
	}
	return services, nil
}

func (s *catalogServiceImpl) GetService(ctx context.Context, id string) (*model.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Validation("Invalid service ID format.")
	}

	svc, err := s.serviceRepo.FindByID(ctx, objectID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Service not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return svc, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
)

func validReviewRequest() *dto.AddReviewRequest {
	return &dto.AddReviewRequest{
		Rating:  5,
		Title:   "Sturdy and beautiful",
		Comment: "Held up well after six months of daily use.",
	}
}

func TestAddProductReviewSnapshotsAuthor(t *testing.T) {
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	product := &model.Product{ID: primitive.NewObjectID(), Name: "Oak Shelf"}
	productRepo.products[product.ID] = product

	svc := NewReviewService(productRepo, newFakeServiceRepo(), userRepo, &fakeUploader{})

	identity := model.Identity{ID: "user_2abc", Email: "buyer@example.com", Name: "Asha Verma", Avatar: "https://img.example.com/a.jpg"}
	review, err := svc.AddProductReview(context.Background(), identity, product.ID.Hex(), validReviewRequest())
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", review.User.Name)
	assert.Equal(t, "user_2abc", review.User.ClerkID)
	assert.Equal(t, "https://img.example.com/a.jpg", review.User.Avatar)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.ID.IsZero())
	assert.False(t, review.CreatedAt.IsZero())

	require.Len(t, productRepo.pushed, 1)
	assert.Same(t, review, productRepo.pushed[0])
	// First authenticated write creates the user mirror.
	assert.Contains(t, userRepo.ensured, "user_2abc")
}

func TestAddProductReviewAnonymousFallback(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID()}
	productRepo.products[product.ID] = product

	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), &fakeUploader{})

	review, err := svc.AddProductReview(context.Background(), model.Identity{ID: "user_2abc"}, product.ID.Hex(), validReviewRequest())
	require.NoError(t, err)
	assert.Equal(t, "Anonymous User", review.User.Name)
}

func TestAddProductReviewUploadsImagesToProductFolder(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID()}
	productRepo.products[product.ID] = product
	uploader := &fakeUploader{}

	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), uploader)

	req := validReviewRequest()
	req.Images = []string{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,BBBB"}

	review, err := svc.AddProductReview(context.Background(), model.Identity{ID: "user_2abc"}, product.ID.Hex(), req)
	require.NoError(t, err)

	assert.Len(t, review.Images, 2)
	assert.Equal(t, []string{"reviews/" + product.ID.Hex(), "reviews/" + product.ID.Hex()}, uploader.folders)
}

func TestAddProductReviewUploadFailureAborts(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID()}
	productRepo.products[product.ID] = product
	uploader := &fakeUploader{err: errors.New("cloudinary 500")}

	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), uploader)

	req := validReviewRequest()
	req.Images = []string{"data:image/jpeg;base64,AAAA"}

	_, err := svc.AddProductReview(context.Background(), model.Identity{ID: "user_2abc"}, product.ID.Hex(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.From(err).Kind)
	assert.Empty(t, productRepo.pushed)
}

func TestAddReviewValidation(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID()}
	productRepo.products[product.ID] = product
	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), &fakeUploader{})
	identity := model.Identity{ID: "user_2abc"}

	req := validReviewRequest()
	req.Title = ""
	_, err := svc.AddProductReview(context.Background(), identity, product.ID.Hex(), req)
	require.Error(t, err)
	assert.Equal(t, "Rating, title, and comment are required.", apperr.From(err).Message)

	req = validReviewRequest()
	req.Rating = 6
	_, err = svc.AddProductReview(context.Background(), identity, product.ID.Hex(), req)
	require.Error(t, err)
	assert.Equal(t, "Rating must be between 1 and 5.", apperr.From(err).Message)
}

func TestAddProductReviewMissingProduct(t *testing.T) {
	svc := NewReviewService(newFakeProductRepo(), newFakeServiceRepo(), newFakeUserRepo(), &fakeUploader{})

	_, err := svc.AddProductReview(context.Background(), model.Identity{ID: "user_2abc"}, primitive.NewObjectID().Hex(), validReviewRequest())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestDeleteProductReviewOnlyAuthor(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewID := primitive.NewObjectID()
	product := &model.Product{
		ID: primitive.NewObjectID(),
		Reviews: []model.Review{
			{ID: reviewID, User: model.ReviewAuthor{ClerkID: "user_author"}},
		},
	}
	productRepo.products[product.ID] = product

	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), &fakeUploader{})

	err := svc.DeleteProductReview(context.Background(), model.Identity{ID: "user_other"}, product.ID.Hex(), reviewID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	assert.Empty(t, productRepo.pulled)

	err = svc.DeleteProductReview(context.Background(), model.Identity{ID: "user_author"}, product.ID.Hex(), reviewID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{reviewID}, productRepo.pulled)
}

func TestDeleteProductReviewNotFound(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID()}
	productRepo.products[product.ID] = product

	svc := NewReviewService(productRepo, newFakeServiceRepo(), newFakeUserRepo(), &fakeUploader{})

	err := svc.DeleteProductReview(context.Background(), model.Identity{ID: "user_2abc"}, product.ID.Hex(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)

	err = svc.DeleteProductReview(context.Background(), model.Identity{ID: "user_2abc"}, product.ID.Hex(), "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestServiceReviewsUseServiceFolder(t *testing.T) {
	serviceRepo := newFakeServiceRepo()
	svcDoc := &model.Service{ID: primitive.NewObjectID(), Name: "Interior Consultation"}
	serviceRepo.services[svcDoc.ID] = svcDoc
	uploader := &fakeUploader{}

	svc := NewReviewService(newFakeProductRepo(), serviceRepo, newFakeUserRepo(), uploader)

	req := validReviewRequest()
	req.Images = []string{"data:image/jpeg;base64,AAAA"}

	review, err := svc.AddServiceReview(context.Background(), model.Identity{ID: "user_2abc"}, svcDoc.ID.Hex(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"service-reviews/" + svcDoc.ID.Hex()}, uploader.folders)
	require.Len(t, serviceRepo.pushed, 1)

	err = svc.DeleteServiceReview(context.Background(), model.Identity{ID: "user_2abc"}, svcDoc.ID.Hex(), review.ID.Hex())
	require.Error(t, err)
	// The fake never embeds the pushed review, so deletion misses.
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

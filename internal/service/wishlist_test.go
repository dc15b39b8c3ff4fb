package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
)

func TestWishlistToggleAddAndRemove(t *testing.T) {
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID(), Name: "Rattan Chair"}
	productRepo.products[product.ID] = product

	svc := NewWishlistService(userRepo, productRepo)
	identity := model.Identity{ID: "user_2abc", Email: "buyer@example.com"}

	wishlist, err := svc.Toggle(context.Background(), identity, &dto.WishlistRequest{
		ProductID: product.ID.Hex(),
		Action:    WishlistActionAdd,
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{product.ID}, wishlist)

	// Adding the same product again must not duplicate the reference.
	wishlist, err = svc.Toggle(context.Background(), identity, &dto.WishlistRequest{
		ProductID: product.ID.Hex(),
		Action:    WishlistActionAdd,
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{product.ID}, wishlist)

	wishlist, err = svc.Toggle(context.Background(), identity, &dto.WishlistRequest{
		ProductID: product.ID.Hex(),
		Action:    WishlistActionRemove,
	})
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestWishlistToggleValidation(t *testing.T) {
	svc := NewWishlistService(newFakeUserRepo(), newFakeProductRepo())
	identity := model.Identity{ID: "user_2abc"}

	tests := []struct {
		name    string
		req     dto.WishlistRequest
		message string
	}{
		{
			name:    "missing product id",
			req:     dto.WishlistRequest{Action: WishlistActionAdd},
			message: "Product ID and action are required.",
		},
		{
			name:    "missing action",
			req:     dto.WishlistRequest{ProductID: primitive.NewObjectID().Hex()},
			message: "Product ID and action are required.",
		},
		{
			name:    "unknown action",
			req:     dto.WishlistRequest{ProductID: primitive.NewObjectID().Hex(), Action: "toggle"},
			message: "Invalid action.",
		},
		{
			name:    "malformed product id",
			req:     dto.WishlistRequest{ProductID: "not-a-hex-id", Action: WishlistActionAdd},
			message: "Invalid product ID format.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Toggle(context.Background(), identity, &tt.req)
			require.Error(t, err)
			appErr := apperr.From(err)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestWishlistGetResolvesProducts(t *testing.T) {
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	product := &model.Product{ID: primitive.NewObjectID(), Name: "Rattan Chair"}
	productRepo.products[product.ID] = product
	userRepo.users["user_2abc"] = &model.User{
		ClerkID:  "user_2abc",
		Wishlist: []primitive.ObjectID{product.ID},
	}

	svc := NewWishlistService(userRepo, productRepo)

	products, err := svc.Get(context.Background(), model.Identity{ID: "user_2abc"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Rattan Chair", products[0].Name)
}

func TestWishlistGetFirstCallIsEmpty(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewWishlistService(userRepo, newFakeProductRepo())

	products, err := svc.Get(context.Background(), model.Identity{ID: "user_new", Email: "new@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	// The read still seeds the mirror so later writes have a document.
	assert.Contains(t, userRepo.ensured, "user_new")
}

package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

// webhookTolerance bounds the accepted clock skew on signed deliveries.
const webhookTolerance = 5 * time.Minute

type WebhookResult struct {
	Created bool
	Message string
}

// WebhookService mirrors identity-provider user records from signed webhook
// deliveries. Upserts are keyed on the external id, so redelivery of the same
// event is harmless.
type WebhookService interface {
	HandleUserEvent(ctx context.Context, headers http.Header, body []byte) (*WebhookResult, error)
}

type webhookServiceImpl struct {
	userRepo repository.UserRepository
	secret   string
}

func NewWebhookService(userRepo repository.UserRepository, secret string) WebhookService {
	return &webhookServiceImpl{
		userRepo: userRepo,
		secret:   secret,
	}
}

func (s *webhookServiceImpl) HandleUserEvent(ctx context.Context, headers http.Header, body []byte) (*WebhookResult, error) {
	msgID := headers.Get("svix-id")
	msgTimestamp := headers.Get("svix-timestamp")
	msgSignature := headers.Get("svix-signature")
	if msgID == "" || msgTimestamp == "" || msgSignature == "" {
		return nil, apperr.Validation("Missing webhook signature headers.")
	}

	if err := s.verifySignature(msgID, msgTimestamp, msgSignature, body); err != nil {
		return nil, err
	}

	var event dto.UserWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperr.Validation("Malformed webhook payload.")
	}

	switch event.Type {
	case "user.created", "user.updated":
		user := mirrorFromWebhook(&event.Data)
		created, err := s.userRepo.Upsert(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("upsert user mirror: %w", err)
		}
		slog.Info("user mirror updated", "clerkId", user.ClerkID, "event", event.Type)
		if created {
			return &WebhookResult{Created: true, Message: "User created"}, nil
		}
		return &WebhookResult{Message: "User updated"}, nil

	case "user.deleted":
		deleted, err := s.userRepo.Delete(ctx, event.Data.ID)
		if err != nil {
			return nil, fmt.Errorf("delete user mirror: %w", err)
		}
		if !deleted {
			return &WebhookResult{Message: "User not found"}, nil
		}
		slog.Info("user mirror deleted", "clerkId", event.Data.ID)
		return &WebhookResult{Message: "User deleted"}, nil

	default:
		// Unknown event types are acknowledged so the provider stops retrying.
		return &WebhookResult{Message: "Webhook received"}, nil
	}
}

// verifySignature checks the svix scheme: base64(HMAC-SHA256(secret,
// "<id>.<timestamp>.<body>")) must match one of the space-separated
// "v1,<sig>" entries, and the timestamp must be within tolerance.
func (s *webhookServiceImpl) verifySignature(msgID, msgTimestamp, msgSignature string, body []byte) error {
	ts, err := strconv.ParseInt(msgTimestamp, 10, 64)
	if err != nil {
		return apperr.InvalidSignature("Invalid webhook timestamp.")
	}
	age := time.Since(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return apperr.InvalidSignature("Webhook timestamp outside tolerance.")
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s.secret, "whsec_"))
	if err != nil {
		return apperr.Internal("Webhook secret is misconfigured.", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, msgTimestamp)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, part := range strings.Split(msgSignature, " ") {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}
	return apperr.InvalidSignature("Invalid webhook signature.")
}

func mirrorFromWebhook(data *dto.WebhookUserData) *model.User {
	email := ""
	for _, addr := range data.EmailAddresses {
		if addr.ID == data.PrimaryEmailAddressID {
			email = addr.EmailAddress
			break
		}
	}
	if email == "" && len(data.EmailAddresses) > 0 {
		email = data.EmailAddresses[0].EmailAddress
	}

	phone := ""
	for _, num := range data.PhoneNumbers {
		if num.ID == data.PrimaryPhoneNumberID {
			phone = num.PhoneNumber
			break
		}
	}
	if phone == "" && len(data.PhoneNumbers) > 0 {
		phone = data.PhoneNumbers[0].PhoneNumber
	}

	name := strings.TrimSpace(data.FirstName + " " + data.LastName)
	if name == "" {
		name = "User"
	}

	return &model.User{
		ClerkID:  data.ID,
		Email:    email,
		Name:     name,
		Phone:    phone,
		ImageURL: data.ImageURL,
	}
}

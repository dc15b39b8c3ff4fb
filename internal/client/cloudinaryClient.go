package client

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"velvethome-backend/internal/config"
)

type CloudinaryClient interface {
	// UploadBase64 uploads one base64-encoded image into the given folder and
	// returns its hosted URL.
	UploadBase64(ctx context.Context, image string, folder string) (string, error)
}

type cloudinaryClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	cloudName  string
	apiKey     string
	apiSecret  string
}

func NewCloudinaryClient(cfg *config.Cloudinary) CloudinaryClient {
	return &cloudinaryClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
	}
}

func (c *cloudinaryClientImpl) UploadBase64(ctx context.Context, image string, folder string) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Signature covers the non-credential params in alphabetical order.
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", folder, timestamp, c.apiSecret)
	digest := sha1.Sum([]byte(toSign))

	form := url.Values{}
	form.Set("file", image)
	form.Set("folder", folder)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", hex.EncodeToString(digest[:]))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseApiURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("cloudinary upload status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned empty url")
	}

	return result.SecureURL, nil
}

// Package cloudinary talks to the Cloudinary REST API for image hosting.
// Uploads are resized to the showcase dimensions by the CDN itself; local
// binaries are never persisted.
package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"

	"digitalagency/apperrors"
	"digitalagency/config"

	"github.com/google/uuid"
)

// showcaseTransform crops every portfolio image to the card dimensions the
// frontend renders.
const showcaseTransform = "c_fill,h_350,w_450,q_auto"

// UploadResult identifies a hosted image.
type UploadResult struct {
	URL      string
	PublicID string
}

type Client struct {
	cfg  config.CloudinaryConfig
	http *http.Client
}

func New(cfg config.CloudinaryConfig) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadImage pushes the image to the CDN with the 450x350 fill transform
// applied at upload time and returns the hosted URL.
func (c *Client) UploadImage(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	publicID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := map[string]string{
		"folder":         c.cfg.Folder + "/" + folder,
		"public_id":      publicID,
		"timestamp":      timestamp,
		"transformation": showcaseTransform,
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		writer.WriteField(key, value)
	}
	writer.WriteField("api_key", c.cfg.APIKey)
	writer.WriteField("signature", c.sign(params))

	part, err := writer.CreateFormFile("file", publicID)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperrors.UpstreamError{Service: "cloudinary", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &apperrors.UpstreamError{
			Service: "cloudinary",
			Err:     fmt.Errorf("upload status %d", resp.StatusCode),
		}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &apperrors.UpstreamError{Service: "cloudinary", Err: err}
	}

	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Destroy removes a hosted image. Callers on delete paths treat failure as
// best-effort and only log it.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		writer.WriteField(key, value)
	}
	writer.WriteField("api_key", c.cfg.APIKey)
	writer.WriteField("signature", c.sign(params))
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperrors.UpstreamError{Service: "cloudinary", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &apperrors.UpstreamError{
			Service: "cloudinary",
			Err:     fmt.Errorf("destroy status %d", resp.StatusCode),
		}
	}

	return nil
}

// sign produces the API signature: the sorted query-style parameter string
// followed by the secret, hashed with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var toSign bytes.Buffer
	for i, key := range keys {
		if i > 0 {
			toSign.WriteByte('&')
		}
		toSign.WriteString(key)
		toSign.WriteByte('=')
		toSign.WriteString(params[key])
	}
	toSign.WriteString(c.cfg.APISecret)

	sum := sha1.Sum(toSign.Bytes())
	return hex.EncodeToString(sum[:])
}

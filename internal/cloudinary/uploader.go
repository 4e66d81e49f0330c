// Package cloudinary uploads images to the external image host using an
// unsigned upload preset, as the admin product, thread and carousel
// managers do.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/cubtton/storefront/internal/port"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

type Config struct {
	CloudName    string
	UploadPreset string
	HTTPClient   *http.Client

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string
}

type Uploader struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
}

var _ port.ImageUploader = (*Uploader)(nil)

func New(cfg Config) (*Uploader, error) {
	if cfg.CloudName == "" || cfg.UploadPreset == "" {
		return nil, fmt.Errorf("cloudinary credentials missing")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 60 * time.Second,
		}
	}

	return &Uploader{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		httpClient:   httpClient,
	}, nil
}

// UploadImage sends one image and returns its public URL.
func (u *Uploader) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := form.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("write upload_preset: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("upload %s: %s", filename, uploadError(data, resp.Status))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload %s: response carries no secure_url", filename)
	}

	return result.SecureURL, nil
}

// StagedImage is one image selected in an admin form but not yet uploaded.
type StagedImage struct {
	Name string
	Data io.Reader
}

// UploadAll uploads staged images in order and returns their URLs. The
// first failure aborts the batch; nothing is rolled back, matching the
// one-by-one admin workflow.
func (u *Uploader) UploadAll(ctx context.Context, staged []StagedImage) ([]string, error) {
	urls := make([]string, 0, len(staged))
	for _, img := range staged {
		url, err := u.UploadImage(ctx, img.Name, img.Data)
		if err != nil {
			return urls, fmt.Errorf("upload staged image %q: %w", img.Name, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadError(data []byte, fallback string) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return fallback
}

package port

import (
	"context"
	"io"
	"time"
)

type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
	AlertLoading AlertKind = "loading"
)

// Notifier receives human-readable status messages. Fire-and-forget; a zero
// duration means the implementation's default.
type Notifier interface {
	ShowAlert(message string, kind AlertKind, duration time.Duration)
}

// ImageUploader stores an image with the external image host and returns
// its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

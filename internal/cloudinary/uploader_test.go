package cloudinary_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cubtton/storefront/internal/cloudinary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploader(t *testing.T, handler http.HandlerFunc) *cloudinary.Uploader {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	uploader, err := cloudinary.New(cloudinary.Config{
		CloudName:    "cubtton",
		UploadPreset: "storefront",
		HTTPClient:   srv.Client(),
		BaseURL:      srv.URL,
	})
	require.NoError(t, err)
	return uploader
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := cloudinary.New(cloudinary.Config{CloudName: "cubtton"})
	require.Error(t, err)

	_, err = cloudinary.New(cloudinary.Config{UploadPreset: "storefront"})
	require.Error(t, err)
}

func TestUploadImage(t *testing.T) {
	uploader := newUploader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cubtton/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "storefront", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "slide.jpg", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.example/slide.jpg"}`)
	})

	url, err := uploader.UploadImage(context.Background(), "slide.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.example/slide.jpg", url)
}

func TestUploadImageRejected(t *testing.T) {
	uploader := newUploader(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Upload preset not found"}}`)
	})

	_, err := uploader.UploadImage(context.Background(), "slide.jpg", strings.NewReader("x"))
	require.ErrorContains(t, err, "Upload preset not found")
}

func TestUploadAll(t *testing.T) {
	var uploads int
	uploader := newUploader(t, func(w http.ResponseWriter, r *http.Request) {
		uploads++
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"secure_url":"https://res.cloudinary.example/%s"}`, header.Filename)
	})

	urls, err := uploader.UploadAll(context.Background(), []cloudinary.StagedImage{
		{Name: "front.jpg", Data: strings.NewReader("a")},
		{Name: "back.jpg", Data: strings.NewReader("b")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, uploads)
	assert.Equal(t, []string{
		"https://res.cloudinary.example/front.jpg",
		"https://res.cloudinary.example/back.jpg",
	}, urls)
}

func TestUploadAllAbortsOnFailure(t *testing.T) {
	var uploads int
	uploader := newUploader(t, func(w http.ResponseWriter, _ *http.Request) {
		uploads++
		if uploads == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.example/ok.jpg"}`)
	})

	urls, err := uploader.UploadAll(context.Background(), []cloudinary.StagedImage{
		{Name: "one.jpg", Data: strings.NewReader("a")},
		{Name: "two.jpg", Data: strings.NewReader("b")},
		{Name: "three.jpg", Data: strings.NewReader("c")},
	})
	require.ErrorContains(t, err, "rate limited")
	assert.Len(t, urls, 1)
	assert.Equal(t, 2, uploads, "the batch stops at the first failure")
}

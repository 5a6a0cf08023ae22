package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// UploadService covers the /upload endpoint group (product images).
type UploadService struct {
	c *Client
}

// UploadedFile is the stored location of an uploaded image.
type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// Image uploads a single image and returns its stored URL.
func (s *UploadService) Image(ctx context.Context, name string, content io.Reader) (*UploadedFile, error) {
	payload, contentType, err := multipartBody("image", map[string]io.Reader{name: content})
	if err != nil {
		return nil, err
	}
	var file UploadedFile
	if err := s.c.doPayload(ctx, http.MethodPost, "/upload/image", nil, payload, contentType, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Images uploads several images in one request, preserving order.
func (s *UploadService) Images(ctx context.Context, files map[string]io.Reader) ([]UploadedFile, error) {
	payload, contentType, err := multipartBody("images", files)
	if err != nil {
		return nil, err
	}
	var uploaded []UploadedFile
	if err := s.c.doPayload(ctx, http.MethodPost, "/upload/images", nil, payload, contentType, &uploaded); err != nil {
		return nil, err
	}
	return uploaded, nil
}

// multipartBody builds a multipart payload with every file under the given
// field name. The body is materialized up front so the 401-retry path can
// re-send it.
func multipartBody(field string, files map[string]io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile(field, filepath.Base(name))
		if err != nil {
			return nil, "", fmt.Errorf("building multipart form: %w", err)
		}
		if _, err := io.Copy(part, content); err != nil {
			return nil, "", fmt.Errorf("copying %s into form: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

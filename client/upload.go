package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload is an image attached to a multipart create/update request.
type Upload struct {
	Name   string
	Reader io.Reader
}

// submit sends payload either as a plain JSON body or, when an image is
// attached, as a multipart form with a "payload" JSON field and an "image"
// file part — the shape the platform's upload endpoints accept.
func submit[T any](ctx context.Context, c *Client, method, path string, payload any, image *Upload, fallback string) (T, error) {
	if image == nil {
		return do[T](ctx, c, method, path, payload, fallback)
	}
	var out T
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	if err := writer.WriteField("payload", string(data)); err != nil {
		return out, err
	}
	part, err := writer.CreateFormFile("image", image.Name)
	if err != nil {
		return out, err
	}
	if _, err := io.Copy(part, image.Reader); err != nil {
		return out, err
	}
	if err := writer.Close(); err != nil {
		return out, err
	}
	header := http.Header{}
	header.Set("Content-Type", writer.FormDataContentType())
	header.Set("Accept", "application/json")
	return call[T](ctx, c, method, path, &buf, header, fallback)
}

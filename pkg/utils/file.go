package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

var (
	ErrUploadTooLarge = errors.New("uploaded file is too large")
	ErrUploadEmpty    = errors.New("uploaded file is empty")
)

// ReadUploadedImage buffers a multipart file fully in memory.
// The content type falls back to image/jpeg when the part declares none.
func ReadUploadedImage(fh *multipart.FileHeader, maxBytes int64) (*model.UploadedImage, error) {
	if fh == nil {
		return nil, fmt.Errorf("file header is nil")
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrUploadTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	return ReadImage(file, fh.Filename, fh.Header.Get("Content-Type"), maxBytes)
}

// ReadImage reads at most maxBytes from r; anything larger is ErrUploadTooLarge.
func ReadImage(r io.Reader, filename, contentType string, maxBytes int64) (*model.UploadedImage, error) {
	reader := r
	if maxBytes > 0 {
		reader = io.LimitReader(r, maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, ErrUploadTooLarge
	}
	if len(data) == 0 {
		return nil, ErrUploadEmpty
	}

	if contentType == "" {
		contentType = model.DefaultImageContentType
	}

	return &model.UploadedImage{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"bundlexfer/internal/apperr"
	"bundlexfer/internal/model"
	"bundlexfer/internal/storage"
)

// DownloadOptions carries the optional credentials presented on download.
type DownloadOptions struct {
	Signature  string
	SigningKey string
}

// BundleService defines the use cases of the two commands.
type BundleService interface {
	// Upload reads the whole file at path and sends it in one request.
	// When signingKey is set the payload is signed and the signature is sent and returned.
	// The file is read before any network call; an unreadable file yields a FileAccessError.
	Upload(ctx context.Context, path string, signingKey string) (*model.Receipt, error)

	// Download fetches the bundle stored under id. An empty id yields a
	// MissingConfigError without touching the network.
	Download(ctx context.Context, id string, opt DownloadOptions) (*model.Bundle, error)

	// Save writes the bundle content to path, replacing any existing file.
	Save(b *model.Bundle, path string) error
}

// bundleService is a concrete implementation of BundleService.
type bundleService struct {
	store storage.Store
}

// NewBundleService constructs a new BundleService.
func NewBundleService(store storage.Store) BundleService {
	return &bundleService{store: store}
}

func (s *bundleService) Upload(ctx context.Context, path string, signingKey string) (*model.Receipt, error) {
	if path == "" {
		return nil, &apperr.MissingConfigError{Key: "UPLOAD_FILE"}
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperr.FileAccessError{Path: path, Err: err}
	}

	var sig string
	if signingKey != "" {
		sig = Sign([]byte(signingKey), payload)
	}

	id, err := s.store.Put(ctx, payload, storage.PutOptions{Signature: sig})
	if err != nil {
		return nil, err
	}
	return &model.Receipt{ID: id, Size: int64(len(payload)), Signature: sig}, nil
}

func (s *bundleService) Download(ctx context.Context, id string, opt DownloadOptions) (*model.Bundle, error) {
	if id == "" {
		return nil, &apperr.MissingConfigError{Key: "BUNDLE_ID"}
	}
	content, err := s.store.Get(ctx, id, storage.GetOptions{
		Signature:  opt.Signature,
		SigningKey: opt.SigningKey,
	})
	if err != nil {
		return nil, err
	}
	return &model.Bundle{ID: id, Content: content}, nil
}

func (s *bundleService) Save(b *model.Bundle, path string) error {
	if err := os.WriteFile(path, b.Content, 0o600); err != nil {
		return &apperr.FileAccessError{Path: path, Err: err}
	}
	return nil
}

// Sign returns the hex-encoded HMAC-SHA256 of payload under key.
func Sign(key, payload []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

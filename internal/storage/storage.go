package storage

import (
	"context"
)

// Package storage contains the client side of the remote bundle store.
// Implementations issue exactly one request per call and never retry.

// PutOptions define optional parameters for uploading a bundle.
// Signature is sent as X-HMAC when non-empty; otherwise no extra headers are added.
type PutOptions struct {
	Signature string
}

// GetOptions define optional parameters for downloading a bundle.
type GetOptions struct {
	Signature  string
	SigningKey string
}

// Store is the remote bundle store as seen by the commands.
type Store interface {
	// Put uploads the payload and returns the identifier the server assigned.
	Put(ctx context.Context, payload []byte, opt PutOptions) (string, error)
	// Get fetches the payload stored under id.
	Get(ctx context.Context, id string, opt GetOptions) ([]byte, error)
}

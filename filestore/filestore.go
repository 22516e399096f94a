// Package filestore stores submission attachments and hands back opaque
// keys that the submission service records as file paths.
package filestore

import "context"

type FileStore interface {
	// Upload stores content under key and returns a reference usable for
	// later download. mediaType may be empty; implementations sniff it.
	Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

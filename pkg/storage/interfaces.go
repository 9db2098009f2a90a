package storage

import "io"

// StorageService stores uploaded media (thumbnails, videos, ebook files).
// Keys are slash-separated paths like "courses/3f2a….jpg".
type StorageService interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	URL(key string) string
}

package services

import (
	"fmt"

	"github.com/google/uuid"
)

// ImageStore is the narrow boundary in front of whatever hosts uploaded
// images. Handlers validate size and content type before calling Upload.
type ImageStore interface {
	Upload(data []byte, contentType string) (string, error)
}

// localImageStore keeps nothing; it hands back a stable URL for the
// uploaded bytes. Swap in a real host behind the same interface.
type localImageStore struct {
	baseURL string
}

func NewLocalImageStore(baseURL string) ImageStore {
	return &localImageStore{baseURL: baseURL}
}

func (s *localImageStore) Upload(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return s.baseURL + "/images/" + uuid.NewString() + ext, nil
}

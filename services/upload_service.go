package services

import (
	"context"
	"errors"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/utils"
)

type UploadService struct {
	host ImageHost
}

func NewUploadService(host ImageHost) *UploadService {
	return &UploadService{host: host}
}

// Upload relays the image to the host. data: URI prefixes are stripped first.
func (s *UploadService) Upload(ctx context.Context, base64Image string) (string, error) {
	payload := utils.StripDataURI(base64Image)
	if payload == "" {
		return "", apperr.Validation("base64Image required")
	}

	url, err := s.host.Upload(ctx, payload)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return "", err
		}
		return "", apperr.Upstream("Image upload failed: "+err.Error(), err)
	}
	return url, nil
}

package usecase

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadService stores catalog images and returns an opaque URL. The
// rest of the system only ever sees the URL.
type UploadService interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	config utils.UploadConfig
	log    *zap.Logger
}

func NewUploadService(config utils.UploadConfig, log *zap.Logger) UploadService {
	return &uploadService{
		config: config,
		log:    log.With(zap.String("service", "upload")),
	}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (s *uploadService) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return "", apperr.Validation("unsupported image type: %s", ext)
	}

	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		s.log.Error("Failed to create upload dir", zap.Error(err))
		return "", apperr.Upstream("failed to store image", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.config.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		s.log.Error("Failed to create image file", zap.Error(err), zap.String("path", path))
		return "", apperr.Upstream("failed to store image", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		s.log.Error("Failed to write image file", zap.Error(err), zap.String("path", path))
		os.Remove(path)
		return "", apperr.Upstream("failed to store image", err)
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(s.config.BaseURL, "/"), name)

	s.log.Info("Image stored",
		zap.String("file", name),
		zap.String("url", url),
		zap.Int64("size", header.Size),
	)

	return url, nil
}

package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
)

// ErrFileTooLarge la imagen supera el tamaño permitido.
var ErrFileTooLarge = fmt.Errorf("la imagen supera el tamaño permitido: %w", domain.ErrInvalidInput)

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// UploadUseCase sube imágenes de productos al host externo.
type UploadUseCase struct {
	uploader ports.ImageUploader
	maxBytes int64
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(uploader ports.ImageUploader, maxBytes int64) *UploadUseCase {
	return &UploadUseCase{uploader: uploader, maxBytes: maxBytes}
}

// Upload valida extensión y tamaño y devuelve la URL pública.
func (uc *UploadUseCase) Upload(ctx context.Context, filename string, size int64, r io.Reader) (*dto.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return nil, domain.Invalid("image", "formato no soportado")
	}
	if uc.maxBytes > 0 && size > uc.maxBytes {
		return nil, ErrFileTooLarge
	}
	url, err := uc.uploader.Upload(ctx, filepath.Base(filename), r)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{Success: true, URL: url}, nil
}

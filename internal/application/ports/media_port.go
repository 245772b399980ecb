package ports

import (
	"context"
	"io"
)

// ImageUploader sube una imagen a un host externo y devuelve su URL pública.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

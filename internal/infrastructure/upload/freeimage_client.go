// Package upload sube imágenes de productos a freeimage.host.
package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/pkg/config"
)

var _ ports.ImageUploader = (*FreeImageClient)(nil)

// FreeImageClient implementación resty de ports.ImageUploader.
type FreeImageClient struct {
	httpClient *resty.Client
	endpoint   string
	apiKey     string
}

// NewFreeImageClient construye el cliente con el endpoint y la API key configurados.
func NewFreeImageClient(cfg config.UploadConfig) *FreeImageClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &FreeImageClient{
		httpClient: restyClient,
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
	}
}

// uploadResponse respuesta exitosa de la API.
type uploadResponse struct {
	StatusCode int `json:"status_code"`
	Image      struct {
		URL string `json:"url"`
	} `json:"image"`
}

// apiError cuerpo de error de la API.
type apiError struct {
	StatusCode int `json:"status_code"`
	Error      struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Upload envía la imagen como campo multipart "source" y devuelve la URL pública.
// Los fallos del host se devuelven envolviendo domain.ErrUpstream con el mensaje recibido.
func (c *FreeImageClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	result := new(uploadResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("format", "json").
		SetFileReader("source", filename, r).
		SetResult(result).
		SetError(apiErr).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: subir imagen: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		if message == "" {
			message = resp.Status()
		}
		return "", fmt.Errorf("%w: %s", domain.ErrUpstream, message)
	}
	if result.Image.URL == "" {
		return "", fmt.Errorf("%w: respuesta sin url", domain.ErrUpstream)
	}
	return result.Image.URL, nil
}

package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_DevuelveURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secreto", r.URL.Query().Get("key"))
		file, header, err := r.FormFile("source")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "sofa.png", header.Filename)
		assert.Equal(t, "png-bytes", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_code":200,"success":{"message":"ok"},"image":{"url":"https://iili.io/sofa.png"}}`))
	}))
	defer srv.Close()

	c := NewFreeImageClient(config.UploadConfig{APIKey: "secreto", Endpoint: srv.URL})
	url, err := c.Upload(context.Background(), "sofa.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://iili.io/sofa.png", url)
}

func TestUpload_ErrorDelHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status_code":400,"error":{"message":"Invalid API v1 key","code":100}}`))
	}))
	defer srv.Close()

	c := NewFreeImageClient(config.UploadConfig{APIKey: "mala", Endpoint: srv.URL})
	_, err := c.Upload(context.Background(), "sofa.png", strings.NewReader("x"))
	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "Invalid API v1 key")
}

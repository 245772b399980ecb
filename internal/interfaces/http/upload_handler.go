package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
)

// UploadHandler imágenes de productos.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Description  Reenvía la imagen al host externo y devuelve su URL pública.
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen (jpg, png, gif, webp)"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "el campo image es requerido")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo leer la imagen")
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), fh.Filename, fh.Size, f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

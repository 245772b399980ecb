package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
)

// SitemapHandler sitemap XML para buscadores.
type SitemapHandler struct {
	uc *usecase.SitemapUseCase
}

// NewSitemapHandler construye el handler.
func NewSitemapHandler(uc *usecase.SitemapUseCase) *SitemapHandler {
	return &SitemapHandler{uc: uc}
}

// Get godoc
// @Summary      Sitemap XML de la tienda
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Get(c *fiber.Ctx) error {
	body, err := h.uc.Generate(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}

package usecase

import (
	"context"
	"net/url"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
)

// SitemapUseCase arma el sitemap.xml con productos y categorías activos.
type SitemapUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	encoder    ports.SitemapEncoder
	publicURL  string
}

// NewSitemapUseCase construye el caso de uso. publicURL es la URL base de la tienda.
func NewSitemapUseCase(products repository.ProductRepository, categories repository.CategoryRepository, encoder ports.SitemapEncoder, publicURL string) *SitemapUseCase {
	return &SitemapUseCase{products: products, categories: categories, encoder: encoder, publicURL: publicURL}
}

// Generate devuelve el documento XML.
func (uc *SitemapUseCase) Generate(ctx context.Context) ([]byte, error) {
	urls := []ports.SitemapURL{{Loc: uc.publicURL + "/", ChangeFreq: "daily", Priority: 1}}

	cats, _, err := uc.categories.List(ctx, "", repository.Page{})
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		if c.Status != entity.CategoryActive {
			continue
		}
		urls = append(urls, ports.SitemapURL{
			Loc:        uc.publicURL + "/category/" + url.PathEscape(c.ID),
			LastMod:    c.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.6,
		})
	}

	products, _, err := uc.products.List(ctx, repository.ProductFilter{Statuses: []string{entity.ProductActive}}, repository.SortNewest, repository.Page{})
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		urls = append(urls, ports.SitemapURL{
			Loc:        uc.publicURL + "/product/" + url.PathEscape(p.Slug),
			LastMod:    p.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}
	return uc.encoder.Encode(urls)
}

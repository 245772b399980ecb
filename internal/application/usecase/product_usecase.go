package usecase

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain"
	"github.com/jhoicas/furnistore-api/internal/domain/catalog"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/pkg/slug"
	"github.com/shopspring/decimal"
)

const (
	maxNameLen             = 255
	maxDescriptionLen      = 3000
	maxShortDescriptionLen = 500
	defaultNewProductDays  = 30
)

var sortAliases = map[string]string{
	"":           repository.SortNewest,
	"newest":     repository.SortNewest,
	"oldest":     repository.SortOldest,
	"popular":    repository.SortPopular,
	"price-low":  repository.SortPriceAsc,
	"price-asc":  repository.SortPriceAsc,
	"price-high": repository.SortPriceDesc,
	"price-desc": repository.SortPriceDesc,
	"rating":     repository.SortRating,
}

// ProductUseCase catálogo de productos: CRUD, listados de la tienda y reseñas.
// La existencia inicial se registra en bodega vía StockService dentro de la misma transacción.
type ProductUseCase struct {
	tx         ports.TxRunner
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	stock      *inventory.StockService
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	tx ports.TxRunner,
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	stock *inventory.StockService,
) *ProductUseCase {
	return &ProductUseCase{tx: tx, repo: repo, categories: categories, customers: customers, orders: orders, stock: stock}
}

func (uc *ProductUseCase) validate(ctx context.Context, in *dto.ProductRequest) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	switch {
	case in.Name == "":
		return "", domain.Invalid("name", "es obligatorio")
	case len([]rune(in.Name)) > maxNameLen:
		return "", domain.Invalid("name", "máximo 255 caracteres")
	case in.Description == "":
		return "", domain.Invalid("description", "es obligatoria")
	case len([]rune(in.Description)) > maxDescriptionLen:
		return "", domain.Invalid("description", "máximo 3000 caracteres")
	case len([]rune(in.ShortDescription)) > maxShortDescriptionLen:
		return "", domain.Invalid("short_description", "máximo 500 caracteres")
	case !in.Price.IsPositive():
		return "", domain.Invalid("price", "debe ser mayor que cero")
	case in.Cost.IsNegative():
		return "", domain.Invalid("cost", "no puede ser negativo")
	case in.Discount.IsNegative() || in.Discount.GreaterThan(decimal.NewFromInt(100)):
		return "", domain.Invalid("discount", "debe estar entre 0 y 100")
	case in.Quantity != nil && *in.Quantity < 0:
		return "", domain.Invalid("quantity", "no puede ser negativa")
	case in.Reorder != nil && *in.Reorder < 0:
		return "", domain.Invalid("reorder", "no puede ser negativo")
	case in.CategoryID == "":
		return "", domain.Invalid("category_id", "es obligatoria")
	}
	status, ok := catalog.NormalizeStatus(in.Status)
	if !ok {
		return "", domain.Invalid("status", "debe ser active, inactive, discontinued o draft")
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", domain.Invalid("category_id", "la categoría no existe")
	}
	return status, nil
}

// apply copia los campos editables del request sobre el producto.
func apply(p *entity.Product, in dto.ProductRequest, status string) {
	p.Name = in.Name
	p.Description = in.Description
	p.ShortDescription = strings.TrimSpace(in.ShortDescription)
	p.Images = catalog.SplitList(in.Images)
	p.ThumbnailImage = ""
	if len(p.Images) > 0 {
		p.ThumbnailImage = p.Images[0]
	}
	p.Price = in.Price
	p.Cost = in.Cost
	p.ComparePrice = in.ComparePrice
	p.Discount = in.Discount
	p.IsOnSale = in.IsOnSale || in.Discount.IsPositive()
	p.Offer = strings.TrimSpace(in.Offer)
	p.OfferExpiry = in.OfferExpiry
	p.CategoryID = in.CategoryID
	p.SubCategoryID = strings.TrimSpace(in.SubCategoryID)
	p.Furniture = toFurniture(in.Furniture)
	p.Status = status
	p.IsFeatured = in.IsFeatured
	p.IsRecommended = in.IsRecommended
	p.IsBestseller = in.IsBestseller
	if in.IsNewProduct != nil {
		p.IsNewProduct = *in.IsNewProduct
	}
	if in.Reorder != nil {
		p.Reorder = *in.Reorder
	}
	p.SEO = entity.SEO{Title: in.SEO.Title, Description: in.SEO.Description, Keywords: catalog.SplitList(in.SEO.Keywords)}
	p.Tags = catalog.SplitList(in.Tags)
}

func toFurniture(f dto.FurnitureDTO) entity.FurnitureDetails {
	colors := make([]entity.ColorStock, 0, len(f.Colors))
	for _, c := range f.Colors {
		if strings.TrimSpace(c.ColorName) == "" {
			continue
		}
		colors = append(colors, entity.ColorStock{
			ColorName:  strings.TrimSpace(c.ColorName),
			ColorCode:  c.ColorCode,
			ColorImage: c.ColorImage,
			Available:  c.Available,
			Stock:      c.Stock,
		})
	}
	return entity.FurnitureDetails{
		Dimensions: toDimensions(f.Dimensions),
		Material: entity.Material{
			Primary:   strings.TrimSpace(f.Material.Primary),
			Secondary: catalog.SplitList(f.Material.Secondary),
			Filling:   strings.TrimSpace(f.Material.Filling),
		},
		Colors:             colors,
		Style:              catalog.SplitList(f.Style),
		Features:           catalog.SplitList(f.Features),
		Weight:             f.Weight,
		MaxWeight:          f.MaxWeight,
		ShippingDimensions: toDimensions(f.ShippingDimensions),
		Care:               catalog.SplitList(f.Care),
	}
}

func toDimensions(d dto.DimensionsDTO) entity.Dimensions {
	unit := strings.TrimSpace(d.Unit)
	if unit == "" {
		unit = "cm"
	}
	return entity.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height, Depth: d.Depth, Unit: unit}
}

// uniqueSlug agrega un sufijo numérico si el slug ya pertenece a otro producto.
func (uc *ProductUseCase) uniqueSlug(ctx context.Context, name, selfID string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "producto"
	}
	candidate := base
	for i := 2; ; i++ {
		other, err := uc.repo.GetBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if other == nil || other.ID == selfID {
			return candidate, nil
		}
		candidate = base + "-" + itoa(i)
	}
}

// Create crea el producto y su registro de bodega con la cantidad inicial.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.ProductRequest) (*dto.AdminProductResponse, error) {
	status, err := uc.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	if in.Quantity == nil {
		return nil, domain.Invalid("quantity", "es obligatoria")
	}
	var p *entity.Product
	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		sku := strings.TrimSpace(in.SKU)
		if sku == "" {
			sku = catalog.GenerateSKU(time.Now(), rand.IntN(1000))
		}
		existing, err := uc.repo.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		s, err := uc.uniqueSlug(ctx, in.Name, "")
		if err != nil {
			return err
		}
		now := time.Now()
		p = &entity.Product{
			ID:           uuid.NewString(),
			SKU:          sku,
			Slug:         s,
			Reorder:      entity.DefaultReorderLevel,
			IsNewProduct: true,
			Reviews:      []entity.Review{},
			CreatedBy:    userID,
			UpdatedBy:    userID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		apply(p, in, status)
		p.Quantity = *in.Quantity
		if err := uc.repo.Create(ctx, p); err != nil {
			return err
		}
		_, err = uc.stock.Set(ctx, p.ID, in.Quantity, strings.TrimSpace(in.Location), "alta de producto", userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToAdminProductResponse(p), nil
}

// Update reemplaza los datos del producto; regenera el slug si cambia el nombre
// y sincroniza la bodega cuando llega quantity.
func (uc *ProductUseCase) Update(ctx context.Context, id, userID string, in dto.ProductRequest) (*dto.AdminProductResponse, error) {
	status, err := uc.validate(ctx, &in)
	if err != nil {
		return nil, err
	}
	var p *entity.Product
	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err = uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if sku := strings.TrimSpace(in.SKU); sku != "" && sku != p.SKU {
			other, err := uc.repo.GetBySKU(ctx, sku)
			if err != nil {
				return err
			}
			if other != nil {
				return domain.ErrDuplicate
			}
			p.SKU = sku
		}
		if in.Name != p.Name {
			s, err := uc.uniqueSlug(ctx, in.Name, p.ID)
			if err != nil {
				return err
			}
			p.Slug = s
		}
		apply(p, in, status)
		p.UpdatedBy = userID
		p.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, p); err != nil {
			return err
		}
		if in.Quantity == nil && in.Location == "" {
			return nil
		}
		rec, err := uc.stock.Set(ctx, p.ID, in.Quantity, strings.TrimSpace(in.Location), "edición de producto", userID)
		if err != nil {
			return err
		}
		p.Quantity = rec.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToAdminProductResponse(p), nil
}

// Delete elimina el producto y su registro de bodega.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		return uc.stock.Forget(ctx, id)
	})
}

// GetByID devuelve el producto e incrementa su contador de vistas.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.IncrementViewCount(ctx, id); err == nil {
		p.ViewCount++
	}
	return ToProductResponse(p), nil
}

// GetAdmin devuelve el producto con su costo, sin contar la vista.
func (uc *ProductUseCase) GetAdmin(ctx context.Context, id string) (*dto.AdminProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToAdminProductResponse(p), nil
}

// GetBySlug busca por slug.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(p), nil
}

// List listado de la tienda; sin AllStatuses solo productos activos.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.Normalize(12, 100)
	sortKey, ok := sortAliases[strings.ToLower(strings.TrimSpace(q.Sort))]
	if !ok {
		return nil, domain.Invalid("sort", "criterio de orden no soportado")
	}
	f := repository.ProductFilter{
		Search:      strings.TrimSpace(firstNonEmpty(q.Search, q.Q)),
		CategoryID:  strings.TrimSpace(q.CategoryID),
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		Featured:    q.Featured,
		Recommended: q.Recommended,
	}
	switch {
	case q.Status != "":
		status, ok := catalog.NormalizeStatus(q.Status)
		if !ok {
			return nil, domain.Invalid("status", "estado desconocido")
		}
		f.Statuses = []string{status}
	case !q.AllStatuses:
		f.Statuses = []string{entity.ProductActive}
	}
	return uc.list(ctx, f, sortKey, q.PageRequest)
}

// ByCategory productos activos de una categoría.
func (uc *ProductUseCase) ByCategory(ctx context.Context, in dto.ByCategoryRequest) (*dto.ProductListResponse, error) {
	if strings.TrimSpace(in.CategoryID) == "" {
		return nil, domain.Invalid("category_id", "es obligatoria")
	}
	page := dto.PageRequest{Page: in.Page, Limit: in.Limit}
	page.Normalize(12, 100)
	return uc.list(ctx, repository.ProductFilter{
		CategoryID: in.CategoryID,
		Statuses:   []string{entity.ProductActive},
	}, repository.SortNewest, page)
}

// ByPrice productos activos en el rango, ordenados por precio ascendente.
func (uc *ProductUseCase) ByPrice(ctx context.Context, in dto.ByPriceRequest) (*dto.ProductListResponse, error) {
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return nil, domain.Invalid("min_price", "no puede superar max_price")
	}
	page := dto.PageRequest{Page: in.Page, Limit: in.Limit}
	page.Normalize(12, 100)
	return uc.list(ctx, repository.ProductFilter{
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Statuses: []string{entity.ProductActive},
	}, repository.SortPriceAsc, page)
}

// NewProducts productos activos creados en los últimos days días.
func (uc *ProductUseCase) NewProducts(ctx context.Context, limit, days int) ([]dto.ProductResponse, error) {
	if days <= 0 {
		days = defaultNewProductDays
	}
	since := time.Now().AddDate(0, 0, -days)
	return uc.top(ctx, repository.ProductFilter{Statuses: []string{entity.ProductActive}, CreatedAfter: &since}, repository.SortNewest, limit)
}

// Bestsellers productos marcados como más vendidos, por unidades vendidas.
func (uc *ProductUseCase) Bestsellers(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	yes := true
	return uc.top(ctx, repository.ProductFilter{Statuses: []string{entity.ProductActive}, Bestseller: &yes}, repository.SortSoldDesc, limit)
}

// TopRated productos activos por calificación media.
func (uc *ProductUseCase) TopRated(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	return uc.top(ctx, repository.ProductFilter{Statuses: []string{entity.ProductActive}}, repository.SortRating, limit)
}

// ByIDs productos activos para carrito o lista de deseos, en el orden pedido.
func (uc *ProductUseCase) ByIDs(ctx context.Context, in dto.ProductIDsRequest) ([]dto.ProductResponse, error) {
	if len(in.ProductIDs) == 0 {
		return []dto.ProductResponse{}, nil
	}
	list, _, err := uc.repo.List(ctx, repository.ProductFilter{
		IDs:      in.ProductIDs,
		Statuses: []string{entity.ProductActive},
	}, repository.SortNewest, repository.Page{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, id := range in.ProductIDs {
		if p, ok := byID[id]; ok {
			out = append(out, *ToProductResponse(p))
			delete(byID, id)
		}
	}
	return out, nil
}

func (uc *ProductUseCase) top(ctx context.Context, f repository.ProductFilter, sortKey string, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	list, _, err := uc.repo.List(ctx, f, sortKey, repository.Page{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToProductResponse(p))
	}
	return out, nil
}

func (uc *ProductUseCase) list(ctx context.Context, f repository.ProductFilter, sortKey string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(ctx, f, sortKey, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Pagination: dto.NewPagination(total, page.Page, page.Limit)}, nil
}

// AddReview publica la reseña de un cliente. Queda verificada si el cliente
// tiene un pedido entregado con el producto.
func (uc *ProductUseCase) AddReview(ctx context.Context, productID, customerID string, in dto.ReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.Invalid("rating", "debe estar entre 1 y 5")
	}
	in.Review = strings.TrimSpace(in.Review)
	if in.Review == "" {
		return nil, domain.Invalid("review", "es obligatoria")
	}
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	verified, err := uc.hasDeliveredOrder(ctx, customerID, productID)
	if err != nil {
		return nil, err
	}

	var review entity.Review
	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		for _, r := range p.Reviews {
			if r.CustomerID == customerID {
				return domain.ErrDuplicate
			}
		}
		review = entity.Review{
			ID:           uuid.NewString(),
			Rating:       in.Rating,
			Title:        strings.TrimSpace(in.Title),
			Review:       in.Review,
			CustomerID:   customerID,
			CustomerName: customer.FullName,
			Verified:     verified,
			Images:       catalog.SplitList(in.Images),
			CreatedAt:    time.Now(),
		}
		p.Reviews = append(p.Reviews, review)
		p.RatingAverage = catalog.AverageRating(p.Reviews)
		p.UpdatedAt = time.Now()
		return uc.repo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := toReviewResponse(review)
	return &out, nil
}

// DeleteReview elimina una reseña; solo el personal o el autor.
func (uc *ProductUseCase) DeleteReview(ctx context.Context, productID, reviewID, actorID string, isStaff bool) error {
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		idx := -1
		for i, r := range p.Reviews {
			if r.ID == reviewID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}
		if !isStaff && p.Reviews[idx].CustomerID != actorID {
			return domain.ErrForbidden
		}
		p.Reviews = append(p.Reviews[:idx], p.Reviews[idx+1:]...)
		p.RatingAverage = catalog.AverageRating(p.Reviews)
		p.UpdatedAt = time.Now()
		return uc.repo.Update(ctx, p)
	})
}

func (uc *ProductUseCase) hasDeliveredOrder(ctx context.Context, customerID, productID string) (bool, error) {
	orders, _, err := uc.orders.List(ctx, repository.OrderFilter{CustomerID: customerID, Status: entity.OrderDelivered}, repository.Page{})
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		for _, d := range o.Details {
			if d.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

// ToProductResponse mapea el producto con precio con descuento y calificación media.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	reviews := make([]dto.ReviewResponse, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, toReviewResponse(r))
	}
	colors := make(dto.ColorList, 0, len(p.Furniture.Colors))
	for _, c := range p.Furniture.Colors {
		colors = append(colors, dto.ColorDTO{
			ColorName:  c.ColorName,
			ColorCode:  c.ColorCode,
			ColorImage: c.ColorImage,
			Available:  c.Available,
			Stock:      c.Stock,
		})
	}
	f := p.Furniture
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           nonNil(p.Images),
		ThumbnailImage:   p.ThumbnailImage,
		Price:            p.Price,
		ComparePrice:     p.ComparePrice,
		Discount:         p.Discount,
		DiscountedPrice:  catalog.DiscountedPrice(p.Price, p.Discount),
		Offer:            p.Offer,
		OfferExpiry:      p.OfferExpiry,
		CategoryID:       p.CategoryID,
		SubCategoryID:    p.SubCategoryID,
		Furniture: dto.FurnitureDTO{
			Dimensions:         toDimensionsDTO(f.Dimensions),
			Material:           dto.MaterialDTO{Primary: f.Material.Primary, Secondary: nonNil(f.Material.Secondary), Filling: f.Material.Filling},
			Colors:             colors,
			Style:              nonNil(f.Style),
			Features:           nonNil(f.Features),
			Weight:             f.Weight,
			MaxWeight:          f.MaxWeight,
			ShippingDimensions: toDimensionsDTO(f.ShippingDimensions),
			Care:               nonNil(f.Care),
		},
		Quantity:      p.Quantity,
		Reorder:       p.Reorder,
		Sold:          p.Sold,
		Status:        p.Status,
		IsFeatured:    p.IsFeatured,
		IsRecommended: p.IsRecommended,
		IsNewProduct:  p.IsNewProduct,
		IsOnSale:      p.IsOnSale,
		IsBestseller:  p.IsBestseller,
		Reviews:       reviews,
		AverageRating: catalog.AverageRating(p.Reviews),
		ReviewCount:   len(p.Reviews),
		SEO:           dto.SEODTO{Title: p.SEO.Title, Description: p.SEO.Description, Keywords: nonNil(p.SEO.Keywords)},
		Tags:          nonNil(p.Tags),
		ViewCount:     p.ViewCount,
		WishlistCount: p.WishlistCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToAdminProductResponse agrega el costo para el back-office.
func ToAdminProductResponse(p *entity.Product) *dto.AdminProductResponse {
	return &dto.AdminProductResponse{ProductResponse: *ToProductResponse(p), Cost: p.Cost}
}

func toReviewResponse(r entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           r.ID,
		Rating:       r.Rating,
		Title:        r.Title,
		Review:       r.Review,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Verified:     r.Verified,
		Images:       nonNil(r.Images),
		CreatedAt:    r.CreatedAt,
	}
}

func toDimensionsDTO(d entity.Dimensions) dto.DimensionsDTO {
	return dto.DimensionsDTO{Length: d.Length, Width: d.Width, Height: d.Height, Depth: d.Depth, Unit: d.Unit}
}

package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/shopspring/decimal"
)

// ProductHandler catálogo de productos: listados de la tienda, CRUD y reseñas.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func decimalQuery(c *fiber.Ctx, key string) (*decimal.Decimal, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func boolQuery(c *fiber.Ctx, key string) (*bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &b, true
}

// listQuery lee los filtros del listado; msg no vacío indica un parámetro inválido.
func listQuery(c *fiber.Ctx) (q dto.ProductListQuery, msg string) {
	q = dto.ProductListQuery{
		PageRequest: pageQuery(c),
		Search:      c.Query("search"),
		CategoryID:  c.Query("category"),
		Status:      c.Query("status"),
		Sort:        c.Query("sort"),
	}
	var ok bool
	if q.MinPrice, ok = decimalQuery(c, "min_price"); !ok {
		return q, "min_price inválido"
	}
	if q.MaxPrice, ok = decimalQuery(c, "max_price"); !ok {
		return q, "max_price inválido"
	}
	if q.Featured, ok = boolQuery(c, "featured"); !ok {
		return q, "featured debe ser booleano"
	}
	if q.Recommended, ok = boolQuery(c, "recommended"); !ok {
		return q, "recommended debe ser booleano"
	}
	return q, ""
}

// List godoc
// @Summary      Listar productos de la tienda
// @Description  Por defecto solo productos activos.
// @Tags         products
// @Produce      json
// @Param        page         query  int     false  "Página"        default(1)
// @Param        limit        query  int     false  "Límite"        default(12)
// @Param        search       query  string  false  "Búsqueda en nombre, descripción y SKU"
// @Param        category     query  string  false  "ID de categoría o subcategoría"
// @Param        status       query  string  false  "Estado"
// @Param        min_price    query  number  false  "Precio mínimo"
// @Param        max_price    query  number  false  "Precio máximo"
// @Param        featured     query  bool    false  "Destacados"
// @Param        recommended  query  bool    false  "Recomendados"
// @Param        sort         query  string  false  "newest, oldest, popular, price-low, price-high, rating"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q, msg := listQuery(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AdminList godoc
// @Summary      Listar productos (back-office, todos los estados)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(12)
// @Param        search  query  string  false  "Búsqueda"
// @Param        status  query  string  false  "Estado"
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/product/admin/list [get]
func (h *ProductHandler) AdminList(c *fiber.Ctx) error {
	q, msg := listQuery(c)
	if msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	q.AllStatuses = true
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados
// @Tags         products
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(12)
// @Success      200    {object}  dto.ProductListResponse
// @Router       /api/product/featured [get]
func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	yes := true
	out, err := h.uc.List(c.UserContext(), dto.ProductListQuery{PageRequest: pageQuery(c), Featured: &yes})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto
// @Description  Incrementa el contador de vistas.
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetAdmin godoc
// @Summary      Obtener producto con costo (back-office)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.AdminProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/admin/{id} [get]
func (h *ProductHandler) GetAdmin(c *fiber.Ctx) error {
	out, err := h.uc.GetAdmin(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product/slug/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Productos por categoría
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ByCategoryRequest  true  "category_id, page, limit"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product/by-category [post]
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	var in dto.ByCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ByCategory(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ByPrice godoc
// @Summary      Productos por rango de precio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ByPriceRequest  true  "min_price, max_price, page, limit"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product/by-price [post]
func (h *ProductHandler) ByPrice(c *fiber.Ctx) error {
	var in dto.ByPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ByPrice(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// NewProducts godoc
// @Summary      Productos nuevos
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(12)
// @Param        days   query  int  false  "Días"    default(30)
// @Success      200    {array}  dto.ProductResponse
// @Router       /api/product/new-products [get]
func (h *ProductHandler) NewProducts(c *fiber.Ctx) error {
	out, err := h.uc.NewProducts(c.UserContext(), c.QueryInt("limit", 12), c.QueryInt("days", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Bestsellers godoc
// @Summary      Más vendidos
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(12)
// @Success      200    {array}  dto.ProductResponse
// @Router       /api/product/bestsellers [get]
func (h *ProductHandler) Bestsellers(c *fiber.Ctx) error {
	out, err := h.uc.Bestsellers(c.UserContext(), c.QueryInt("limit", 12))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// TopRated godoc
// @Summary      Mejor calificados
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(12)
// @Success      200    {array}  dto.ProductResponse
// @Router       /api/product/top-rated [get]
func (h *ProductHandler) TopRated(c *fiber.Ctx) error {
	out, err := h.uc.TopRated(c.UserContext(), c.QueryInt("limit", 12))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ByIDs godoc
// @Summary      Productos del carrito o lista de deseos
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductIDsRequest  true  "product_ids"
// @Success      200   {array}  dto.ProductResponse
// @Router       /api/product/cart-products [post]
// @Router       /api/product/wish-products [post]
func (h *ProductHandler) ByIDs(c *fiber.Ctx) error {
	var in dto.ProductIDsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ByIDs(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.AdminProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AdminProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// AddReview godoc
// @Summary      Publicar reseña
// @Description  Requiere token de cliente.
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del producto"
// @Param        body  body  dto.ReviewRequest  true  "rating 1-5, title, review, images"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product/{id}/reviews [post]
func (h *ProductHandler) AddReview(c *fiber.Ctx) error {
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddReview(c.UserContext(), c.Params("id"), GetCustomerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteReview godoc
// @Summary      Eliminar reseña
// @Description  Permitido al personal o al autor de la reseña.
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID del producto"
// @Param        reviewId  path  string  true  "ID de la reseña"
// @Success      200       {object}  dto.MessageResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/product/{id}/reviews/{reviewId} [delete]
func (h *ProductHandler) DeleteReview(c *fiber.Ctx) error {
	err := h.uc.DeleteReview(c.UserContext(), c.Params("id"), c.Params("reviewId"), GetUserID(c), IsStaff(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reseña eliminada"})
}

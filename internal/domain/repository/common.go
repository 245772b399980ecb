package repository

// Page ventana de paginación por desplazamiento.
type Page struct {
	Limit  int
	Offset int
}

// Criterios de orden para listados de productos.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPopular   = "popular"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortSoldDesc  = "sold-desc"
)

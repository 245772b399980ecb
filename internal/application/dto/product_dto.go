package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StringList acepta un arreglo JSON o un texto separado por comas.
type StringList []string

// UnmarshalJSON implementa json.Unmarshaler.
func (l *StringList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = splitComma(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*l = arr
	return nil
}

// ColorList acepta "Rojo, Azul", ["Rojo"] o [{"color_name":"Rojo",...}].
type ColorList []ColorDTO

// UnmarshalJSON implementa json.Unmarshaler.
func (l *ColorList) UnmarshalJSON(b []byte) error {
	var names StringList
	if err := json.Unmarshal(b, &names); err == nil {
		out := make([]ColorDTO, 0, len(names))
		for _, n := range names {
			out = append(out, ColorDTO{ColorName: n, Available: true})
		}
		*l = out
		return nil
	}
	var arr []ColorDTO
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*l = arr
	return nil
}

func splitComma(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DimensionsDTO medidas.
type DimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Unit   string  `json:"unit"`
}

// MaterialDTO materiales.
type MaterialDTO struct {
	Primary   string     `json:"primary"`
	Secondary StringList `json:"secondary"`
	Filling   string     `json:"filling,omitempty"`
}

// ColorDTO variante de color.
type ColorDTO struct {
	ColorName  string `json:"color_name"`
	ColorCode  string `json:"color_code"`
	ColorImage string `json:"color_image,omitempty"`
	Available  bool   `json:"available"`
	Stock      int    `json:"stock"`
}

// FurnitureDTO atributos de mueble.
type FurnitureDTO struct {
	Dimensions         DimensionsDTO `json:"dimensions"`
	Material           MaterialDTO   `json:"material"`
	Colors             ColorList     `json:"colors"`
	Style              StringList    `json:"style"`
	Features           StringList    `json:"features"`
	Weight             float64       `json:"weight"`
	MaxWeight          float64       `json:"max_weight"`
	ShippingDimensions DimensionsDTO `json:"shipping_dimensions"`
	Care               StringList    `json:"care"`
}

// SEODTO metadatos SEO.
type SEODTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Keywords    StringList `json:"keywords"`
}

// ProductRequest alta o modificación de producto.
type ProductRequest struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	Images           []string        `json:"images"`
	Price            decimal.Decimal `json:"price"`
	Cost             decimal.Decimal `json:"cost"`
	ComparePrice     decimal.Decimal `json:"compare_price"`
	Discount         decimal.Decimal `json:"discount"`
	Offer            string          `json:"offer"`
	OfferExpiry      *time.Time      `json:"offer_expiry"`
	CategoryID       string          `json:"category_id"`
	SubCategoryID    string          `json:"sub_category_id"`
	Furniture        FurnitureDTO    `json:"furniture"`
	Quantity         *int            `json:"quantity"`
	Reorder          *int            `json:"reorder"`
	Status           string          `json:"status"`
	IsFeatured       bool            `json:"is_featured"`
	IsRecommended    bool            `json:"is_recommended"`
	IsNewProduct     *bool           `json:"is_new_product"`
	IsOnSale         bool            `json:"is_on_sale"`
	IsBestseller     bool            `json:"is_bestseller"`
	SEO              SEODTO          `json:"seo"`
	Tags             StringList      `json:"tags"`
	Location         string          `json:"location"` // ubicación en bodega
}

// ReviewRequest reseña de un cliente.
type ReviewRequest struct {
	Rating int      `json:"rating"`
	Title  string   `json:"title"`
	Review string   `json:"review"`
	Images []string `json:"images"`
}

// ReviewResponse reseña publicada.
type ReviewResponse struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Review       string    `json:"review"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Verified     bool      `json:"verified"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductResponse salida de un producto con valores derivados.
type ProductResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	SKU              string           `json:"sku"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description,omitempty"`
	Images           []string         `json:"images"`
	ThumbnailImage   string           `json:"thumbnail_image,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	ComparePrice     decimal.Decimal  `json:"compare_price"`
	Discount         decimal.Decimal  `json:"discount"`
	DiscountedPrice  decimal.Decimal  `json:"discounted_price"`
	Offer            string           `json:"offer,omitempty"`
	OfferExpiry      *time.Time       `json:"offer_expiry,omitempty"`
	CategoryID       string           `json:"category_id"`
	SubCategoryID    string           `json:"sub_category_id,omitempty"`
	Furniture        FurnitureDTO     `json:"furniture"`
	Quantity         int              `json:"quantity"`
	Reorder          int              `json:"reorder"`
	Sold             int              `json:"sold"`
	Status           string           `json:"status"`
	IsFeatured       bool             `json:"is_featured"`
	IsRecommended    bool             `json:"is_recommended"`
	IsNewProduct     bool             `json:"is_new_product"`
	IsOnSale         bool             `json:"is_on_sale"`
	IsBestseller     bool             `json:"is_bestseller"`
	Reviews          []ReviewResponse `json:"reviews"`
	AverageRating    float64          `json:"average_rating"`
	ReviewCount      int              `json:"review_count"`
	SEO              SEODTO           `json:"seo"`
	Tags             []string         `json:"tags"`
	ViewCount        int              `json:"view_count"`
	WishlistCount    int              `json:"wishlist_count"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// AdminProductResponse agrega el costo, visible solo para el personal.
type AdminProductResponse struct {
	ProductResponse
	Cost decimal.Decimal `json:"cost"`
}

// ProductListQuery parámetros del listado público.
type ProductListQuery struct {
	PageRequest
	Search      string
	CategoryID  string
	Status      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Featured    *bool
	Recommended *bool
	Sort        string
	AllStatuses bool // back-office: no forzar status=active
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// ProductIDsRequest productos por ids (carrito, lista de deseos).
type ProductIDsRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// ByCategoryRequest productos de una categoría.
type ByCategoryRequest struct {
	CategoryID string `json:"category_id"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// ByPriceRequest productos en un rango de precios.
type ByPriceRequest struct {
	MinPrice *decimal.Decimal `json:"min_price"`
	MaxPrice *decimal.Decimal `json:"max_price"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// UploadResponse URL pública de una imagen subida.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

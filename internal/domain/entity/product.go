package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductActive       = "active"
	ProductInactive     = "inactive"
	ProductDiscontinued = "discontinued"
	ProductDraft        = "draft"
)

// DefaultReorderLevel nivel de reorden cuando no se indica.
const DefaultReorderLevel = 20

// Product representa un mueble del catálogo.
// Quantity refleja la existencia del registro de bodega; Sold acumula unidades vendidas.
type Product struct {
	ID               string           `bson:"_id"`
	Name             string           `bson:"name"`
	SKU              string           `bson:"sku"`
	Slug             string           `bson:"slug"`
	Description      string           `bson:"description"`
	ShortDescription string           `bson:"short_description,omitempty"`
	Images           []string         `bson:"images"`
	ThumbnailImage   string           `bson:"thumbnail_image,omitempty"`
	Price            decimal.Decimal  `bson:"price"`
	Cost             decimal.Decimal  `bson:"cost"`
	ComparePrice     decimal.Decimal  `bson:"compare_price"`
	Discount         decimal.Decimal  `bson:"discount"` // porcentaje 0-100
	Offer            string           `bson:"offer,omitempty"`
	OfferExpiry      *time.Time       `bson:"offer_expiry,omitempty"`
	CategoryID       string           `bson:"category_id"`
	SubCategoryID    string           `bson:"sub_category_id,omitempty"`
	Furniture        FurnitureDetails `bson:"furniture"`
	Quantity         int              `bson:"quantity"`
	Reorder          int              `bson:"reorder"`
	Sold             int              `bson:"sold"`
	Status           string           `bson:"status"`
	IsFeatured       bool             `bson:"is_featured"`
	IsRecommended    bool             `bson:"is_recommended"`
	IsNewProduct     bool             `bson:"is_new_product"`
	IsOnSale         bool             `bson:"is_on_sale"`
	IsBestseller     bool             `bson:"is_bestseller"`
	Reviews          []Review         `bson:"reviews"`
	RatingAverage    float64          `bson:"rating_average"` // denormalizado para ordenar
	SEO              SEO              `bson:"seo"`
	Tags             []string         `bson:"tags"`
	CreatedBy        string           `bson:"created_by,omitempty"`
	UpdatedBy        string           `bson:"updated_by,omitempty"`
	ViewCount        int              `bson:"view_count"`
	WishlistCount    int              `bson:"wishlist_count"`
	CreatedAt        time.Time        `bson:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at"`
}

// FurnitureDetails atributos propios de un mueble.
type FurnitureDetails struct {
	Dimensions         Dimensions   `bson:"dimensions"`
	Material           Material     `bson:"material"`
	Colors             []ColorStock `bson:"colors"`
	Style              []string     `bson:"style"`
	Features           []string     `bson:"features"`
	Weight             float64      `bson:"weight"`
	MaxWeight          float64      `bson:"max_weight"`
	ShippingDimensions Dimensions   `bson:"shipping_dimensions"`
	Care               []string     `bson:"care"`
}

// Dimensions medidas del mueble.
type Dimensions struct {
	Length float64 `bson:"length"`
	Width  float64 `bson:"width"`
	Height float64 `bson:"height"`
	Depth  float64 `bson:"depth"`
	Unit   string  `bson:"unit"` // cm por defecto
}

// Material material principal y secundarios.
type Material struct {
	Primary   string   `bson:"primary"`
	Secondary []string `bson:"secondary"`
	Filling   string   `bson:"filling,omitempty"`
}

// ColorStock variante de color con su existencia.
type ColorStock struct {
	ColorName  string `bson:"color_name"`
	ColorCode  string `bson:"color_code"`
	ColorImage string `bson:"color_image,omitempty"`
	Available  bool   `bson:"available"`
	Stock      int    `bson:"stock"`
}

// SEO metadatos para buscadores.
type SEO struct {
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	Keywords    []string `bson:"keywords"`
}

// Review reseña de un cliente (embebida en el producto).
type Review struct {
	ID           string    `bson:"id"`
	Rating       int       `bson:"rating"` // 1-5
	Title        string    `bson:"title"`
	Review       string    `bson:"review"`
	CustomerID   string    `bson:"customer_id"`
	CustomerName string    `bson:"customer_name"`
	Verified     bool      `bson:"verified"`
	HelpfulYes   int       `bson:"helpful_yes"`
	HelpfulNo    int       `bson:"helpful_no"`
	Images       []string  `bson:"images"`
	CreatedAt    time.Time `bson:"created_at"`
}

package ports

import "time"

// SitemapURL entrada del sitemap de la tienda.
type SitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapEncoder serializa las entradas como documento urlset.
type SitemapEncoder interface {
	Encode(urls []SitemapURL) ([]byte, error)
}

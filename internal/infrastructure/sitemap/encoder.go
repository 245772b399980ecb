// Package sitemap serializa el sitemap de la tienda con etree.
package sitemap

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ ports.SitemapEncoder = Encoder{}

// Encoder genera un documento <urlset> según el protocolo sitemaps.org.
type Encoder struct{}

// Encode serializa las entradas; lastmod se omite cuando la fecha es cero.
func (Encoder) Encode(urls []ports.SitemapURL) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	set := doc.CreateElement("urlset")
	set.CreateAttr("xmlns", namespace)

	for _, u := range urls {
		el := set.CreateElement("url")
		el.CreateElement("loc").SetText(u.Loc)
		if !u.LastMod.IsZero() {
			el.CreateElement("lastmod").SetText(u.LastMod.UTC().Format("2006-01-02"))
		}
		if u.ChangeFreq != "" {
			el.CreateElement("changefreq").SetText(u.ChangeFreq)
		}
		if u.Priority > 0 {
			el.CreateElement("priority").SetText(strconv.FormatFloat(u.Priority, 'f', 1, 64))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

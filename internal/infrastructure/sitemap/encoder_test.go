package sitemap

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	out, err := Encoder{}.Encode([]ports.SitemapURL{
		{Loc: "https://tienda.vn/", ChangeFreq: "daily", Priority: 1},
		{Loc: "https://tienda.vn/product/sofa-go?x=1&y=2", LastMod: time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC), Priority: 0.8},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("urlset")
	require.NotNil(t, root)
	assert.Equal(t, namespace, root.SelectAttrValue("xmlns", ""))

	urls := root.SelectElements("url")
	require.Len(t, urls, 2)
	assert.Nil(t, urls[0].SelectElement("lastmod"))
	assert.Equal(t, "1.0", urls[0].SelectElement("priority").Text())
	assert.Equal(t, "https://tienda.vn/product/sofa-go?x=1&y=2", urls[1].SelectElement("loc").Text())
	assert.Equal(t, "2026-03-14", urls[1].SelectElement("lastmod").Text())
	assert.Contains(t, string(out), "&amp;")
}

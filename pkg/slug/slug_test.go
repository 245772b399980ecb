package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Ghế Sofa Gỗ Sồi":          "ghe-sofa-go-soi",
		"Bàn ăn 6 chỗ - Đẹp":       "ban-an-6-cho-dep",
		"  Silla  Comedor  Roble ": "silla-comedor-roble",
		"Mesa!!!":                  "mesa",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}

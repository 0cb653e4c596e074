package media

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxEdge = 1024
	quality = 80
)

// IsImage diz se o payload passa pelo pipeline de compressão.
// Comprovantes podem ser PDF e seguem direto para o storage.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// Compress decodifica (jpeg/png/webp), reduz para no máximo 1024px na
// maior aresta e reencoda em webp com perda. Devolve os bytes e o
// content-type final.
func Compress(data []byte) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img, maxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, "", fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), "image/webp", nil
}

func downscale(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= max && h <= max {
		return img
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// WithExtension troca a extensão do nome para o formato reencodado.
func WithExtension(fileName, ext string) string {
	if i := strings.LastIndex(fileName, "."); i > 0 {
		fileName = fileName[:i]
	}
	return fileName + "." + ext
}

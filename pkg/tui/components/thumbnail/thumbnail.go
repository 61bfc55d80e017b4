// Package thumbnail turns base64 data URIs into small terminal previews made
// of half-block cells.
package thumbnail

import (
	"bytes"
	"cmp"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/kofalt/go-memoize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const upperHalfBlock = "▀"

var ErrNotDataURI = errors.New("not a base64 data URI")

var cache = memoize.NewMemoizer(10*time.Minute, 30*time.Minute)

// ParseDataURI splits data:<media type>;base64,<data> into its media type and
// decoded payload.
func ParseDataURI(uri string) (mediaType string, payload []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}

	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}

	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return mediaType, nil, ErrNotDataURI
	}

	payload, err = base64.StdEncoding.DecodeString(data)
	if err != nil {
		payload, err = base64.RawStdEncoding.DecodeString(data)
	}
	if err != nil {
		return mediaType, nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return mediaType, payload, nil
}

// Placeholder is what stands in for an image that cannot be drawn.
func Placeholder(mediaType string) string {
	return "[image " + cmp.Or(mediaType, "unknown") + "]"
}

// Render draws the image in uri within maxCols x maxRows cells, keeping its
// aspect ratio. Anything that cannot be decoded renders as a Placeholder.
func Render(uri string, maxCols, maxRows int) string {
	if maxCols <= 0 || maxRows <= 0 {
		return ""
	}

	key := fmt.Sprintf("%dx%d:%s", maxCols, maxRows, uri)
	out, _, _ := cache.Memoize(key, func() (any, error) {
		return render(uri, maxCols, maxRows), nil
	})
	s, _ := out.(string)
	return s
}

// Size returns the cell size Render will produce for uri, or zero when the
// image cannot be decoded.
func Size(uri string, maxCols, maxRows int) (cols, rows int) {
	_, payload, err := ParseDataURI(uri)
	if err != nil {
		return 0, 0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(payload))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0
	}
	w, h := fit(cfg.Width, cfg.Height, maxCols, maxRows*2)
	return w, (h + 1) / 2
}

func render(uri string, maxCols, maxRows int) string {
	mediaType, payload, err := ParseDataURI(uri)
	if err != nil {
		return Placeholder(mediaType)
	}

	src, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return Placeholder(mediaType)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return Placeholder(mediaType)
	}

	w, h := fit(b.Dx(), b.Dy(), maxCols, maxRows*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return halfBlocks(dst)
}

// fit scales w x h down or up so it fits in maxW x maxH pixels.
func fit(w, h, maxW, maxH int) (int, int) {
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := max(1, int(float64(w)*scale+0.5))
	fh := max(1, int(float64(h)*scale+0.5))
	return min(fw, maxW), min(fh, maxH)
}

// halfBlocks renders two pixel rows per terminal row: the upper pixel as the
// foreground of ▀, the lower one as its background.
func halfBlocks(img *image.RGBA) string {
	b := img.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle()
			if top := img.RGBAAt(x, y); top.A > 0 {
				style = style.Foreground(opaque(top))
			}
			if y+1 < b.Max.Y {
				if bottom := img.RGBAAt(x, y+1); bottom.A > 0 {
					style = style.Background(opaque(bottom))
				}
			}
			sb.WriteString(style.Render(upperHalfBlock))
		}
	}
	return sb.String()
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

package mapper

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"

	"github.com/HugoSmits86/nativewebp"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// ============================================================
// Raster preview
// ============================================================

const (
	minPreviewSize = 64
	maxPreviewSize = 2048
)

// RenderPreview рисует упрощённый растровый план (габариты повёрнутых
// предметов как прямоугольники по осям) и кодирует его в WebP.
func (r *Renderer) RenderPreview(view scene.View, px int) ([]byte, error) {
	img, err := r.Rasterize(view, px)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize рисует план в NRGBA размером px×px.
func (r *Renderer) Rasterize(view scene.View, px int) (*image.NRGBA, error) {
	if view.RoomSize <= 0 {
		return nil, fmt.Errorf("room size must be positive")
	}
	if px < minPreviewSize {
		px = minPreviewSize
	}
	if px > maxPreviewSize {
		px = maxPreviewSize
	}

	img := image.NewNRGBA(image.Rect(0, 0, px, px))
	scale := float64(px) / view.RoomSize

	draw.Draw(img, img.Bounds(), image.NewUniform(parseColor(view.Settings.FloorColor, color.NRGBA{0xc9, 0xb8, 0xa0, 0xff})), image.Point{}, draw.Src)

	if view.Settings.ShowGrid {
		grid := image.NewUniform(color.NRGBA{0x88, 0x88, 0x88, 0x60})
		for m := 1; float64(m) < view.RoomSize; m++ {
			p := int(float64(m) * scale)
			draw.Draw(img, image.Rect(p, 0, p+1, px), grid, image.Point{}, draw.Over)
			draw.Draw(img, image.Rect(0, p, px, p+1), grid, image.Point{}, draw.Over)
		}
	}

	for _, item := range view.Furniture {
		rect := r.itemBounds(item, view.RoomSize, scale)
		fill := parseColor(r.fillColor(item), color.NRGBA{0x88, 0x88, 0x88, 0xff})
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Over)
		if item.ID == view.SelectedID {
			outline(img, rect, parseColor(selectedColor, color.NRGBA{0x3b, 0x82, 0xf6, 0xff}))
		}
	}

	outline(img, img.Bounds(), parseColor(view.Settings.WallColor, color.NRGBA{0xf5, 0xf5, 0xf0, 0xff}))
	return img, nil
}

// itemBounds: описанный прямоугольник повёрнутого предмета в пикселях.
func (r *Renderer) itemBounds(item models.FurnitureInstance, roomSize, scale float64) image.Rectangle {
	shape := r.shape(item.Type)
	w := shape.Width * item.Scale
	d := shape.Depth * item.Scale
	sin, cos := math.Abs(math.Sin(item.Rotation)), math.Abs(math.Cos(item.Rotation))
	halfW := (w*cos + d*sin) / 2
	halfD := (w*sin + d*cos) / 2

	cx := (item.Position[0] + roomSize/2) * scale
	cy := (item.Position[2] + roomSize/2) * scale
	return image.Rect(
		int(math.Round(cx-halfW*scale)), int(math.Round(cy-halfD*scale)),
		int(math.Round(cx+halfW*scale)), int(math.Round(cy+halfD*scale)),
	)
}

func outline(img *image.NRGBA, rect image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+2), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Max.Y-2, rect.Max.X, rect.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+2, rect.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Max.X-2, rect.Min.Y, rect.Max.X, rect.Max.Y), src, image.Point{}, draw.Src)
}

func parseColor(hex string, fallback color.NRGBA) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

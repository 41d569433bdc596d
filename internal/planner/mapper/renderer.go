package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"room-planner/internal/planner/catalog"
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"
)

// ============================================================
// Renderer
// ============================================================

const (
	pixelsPerMeter = 50.0
	padding        = 20.0
	wallWidth      = 6.0

	selectedColor = "#3b82f6"
	gridColor     = "#888888"
)

// Renderer рисует план комнаты сверху. Габариты типов берутся из каталога
// один раз при создании.
type Renderer struct {
	shapes map[models.FurnitureType]catalog.Shape
}

func NewRenderer(c *catalog.Catalog) *Renderer {
	return &Renderer{shapes: c.Shapes()}
}

func (r *Renderer) shape(t models.FurnitureType) catalog.Shape {
	if s, ok := r.shapes[t]; ok {
		return s
	}
	return catalog.Shape{Width: 1, Height: 1, Depth: 1, Color: gridColor}
}

// fillColor возвращает явный цвет предмета или цвет его типа.
func (r *Renderer) fillColor(item models.FurnitureInstance) string {
	if item.Color != "" {
		return item.Color
	}
	return r.shape(item.Type).Color
}

// RenderSVG собирает SVG плана текущей комнаты.
func (r *Renderer) RenderSVG(view scene.View) (string, error) {
	if view.RoomSize <= 0 {
		return "", fmt.Errorf("room size must be positive")
	}

	size := view.RoomSize*pixelsPerMeter + 2*padding

	var elements []string
	elements = append(elements, r.renderFloor(view))
	if view.Settings.ShowGrid {
		elements = append(elements, r.renderGrid(view)...)
	}
	elements = append(elements, r.renderWalls(view))
	elements = append(elements, r.renderItems(view)...)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(size), formatFloat(size), formatFloat(size), formatFloat(size)))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("  <title>%s: %s</title>\n", escape(view.ProjectName), escape(view.RoomName)))

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Element renderers
// ============================================================

// toCanvas переводит мировые X/Z в координаты холста.
func toCanvas(roomSize, x, z float64) (float64, float64) {
	return (x+roomSize/2)*pixelsPerMeter + padding, (z+roomSize/2)*pixelsPerMeter + padding
}

func (r *Renderer) renderFloor(view scene.View) string {
	side := view.RoomSize * pixelsPerMeter
	return fmt.Sprintf(`<rect id="floor" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		formatFloat(padding), formatFloat(padding), formatFloat(side), formatFloat(side), escape(view.Settings.FloorColor))
}

func (r *Renderer) renderWalls(view scene.View) string {
	side := view.RoomSize * pixelsPerMeter
	return fmt.Sprintf(`<rect id="walls" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
		formatFloat(padding), formatFloat(padding), formatFloat(side), formatFloat(side),
		escape(view.Settings.WallColor), formatFloat(wallWidth))
}

func (r *Renderer) renderGrid(view scene.View) []string {
	var out []string
	lines := int(math.Floor(view.RoomSize))
	half := view.RoomSize / 2
	for i := 1; i < lines; i++ {
		offset := -half + float64(i)
		x1, y1 := toCanvas(view.RoomSize, offset, -half)
		x2, y2 := toCanvas(view.RoomSize, offset, half)
		out = append(out, gridLine(x1, y1, x2, y2))
		x1, y1 = toCanvas(view.RoomSize, -half, offset)
		x2, y2 = toCanvas(view.RoomSize, half, offset)
		out = append(out, gridLine(x1, y1, x2, y2))
	}
	return out
}

func gridLine(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5" stroke-opacity="0.5"/>`,
		formatFloat(x1), formatFloat(y1), formatFloat(x2), formatFloat(y2), gridColor)
}

func (r *Renderer) renderItems(view scene.View) []string {
	var out []string
	for _, item := range view.Furniture {
		shape := r.shape(item.Type)
		w := shape.Width * item.Scale * pixelsPerMeter
		d := shape.Depth * item.Scale * pixelsPerMeter
		cx, cy := toCanvas(view.RoomSize, item.Position[0], item.Position[2])

		stroke := "#1a202c"
		strokeWidth := 1.0
		if item.ID == view.SelectedID {
			stroke = selectedColor
			strokeWidth = 3
		}

		// поворот вокруг Y при виде сверху идёт против часовой стрелки
		deg := -item.Rotation * 180 / math.Pi
		out = append(out, fmt.Sprintf(
			`<rect id="item-%s" data-type="%s" x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s" transform="rotate(%s %s %s)"/>`,
			escape(item.ID), item.Type,
			formatFloat(cx-w/2), formatFloat(cy-d/2), formatFloat(w), formatFloat(d),
			escape(r.fillColor(item)), stroke, formatFloat(strokeWidth),
			formatFloat(deg), formatFloat(cx), formatFloat(cy)))

		if item.ID == view.SelectedID && view.Settings.ShowMeasurements {
			out = append(out, fmt.Sprintf(`<text x="%s" y="%s" font-size="12" text-anchor="middle" fill="%s">%sm</text>`,
				formatFloat(cx), formatFloat(cy-d/2-6), selectedColor, strconv.FormatFloat(shape.Width*item.Scale, 'f', 1, 64)))
		}
	}
	return out
}

// ============================================================
// Helpers
// ============================================================

func formatFloat(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // -0 → 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var xmlEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;", `'`, "&apos;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

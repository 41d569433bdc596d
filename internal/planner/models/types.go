package models

import "math"

// ============================================================
// Geometry primitives
// ============================================================

// Vec3 задаёт позицию в метрах [X, Y, Z], Y направлена вверх.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// ============================================================
// Furniture types
// ============================================================

type FurnitureType string

const (
	TypeSofa      FurnitureType = "sofa"
	TypeChair     FurnitureType = "chair"
	TypeTable     FurnitureType = "table"
	TypeBed       FurnitureType = "bed"
	TypeWardrobe  FurnitureType = "wardrobe"
	TypeTVStand   FurnitureType = "tv-stand"
	TypeBookshelf FurnitureType = "bookshelf"
	TypeDesk      FurnitureType = "desk"
	TypeWindow    FurnitureType = "window"
	TypeDoor      FurnitureType = "door"
	TypePainting  FurnitureType = "painting"
	TypePlant     FurnitureType = "plant"
	TypeLamp      FurnitureType = "lamp"
	TypeRug       FurnitureType = "rug"
)

// AllTypes: полный каталог типов в порядке отображения.
var AllTypes = []FurnitureType{
	TypeSofa, TypeChair, TypeTable, TypeBed, TypeWardrobe, TypeTVStand, TypeBookshelf,
	TypeDesk, TypeWindow, TypeDoor, TypePainting, TypePlant, TypeLamp, TypeRug,
}

// Valid сообщает, входит ли тип в каталог.
func (t FurnitureType) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ============================================================
// Limits
// ============================================================

const (
	MinScale = 0.5
	MaxScale = 3.0

	// WallMargin: отступ от стены, ближе которого предмет не ставится.
	WallMargin = 0.5

	RotationStep = math.Pi / 4
	FullTurn     = 2 * math.Pi
)

// ClampScale приводит масштаб к [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if math.IsNaN(s) {
		return 1
	}
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// WrapRotation приводит угол к [0, 2π).
func WrapRotation(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	r = math.Mod(r, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	if r >= FullTurn {
		r = 0
	}
	return r
}

// ============================================================
// Catalog & instances
// ============================================================

type CatalogEntry struct {
	Name     string        `json:"name" yaml:"name"`
	Icon     string        `json:"icon" yaml:"icon"`
	Type     FurnitureType `json:"type" yaml:"type"`
	Category string        `json:"category" yaml:"category"`
	ShopLink string        `json:"shopLink,omitempty" yaml:"shopLink"`
	Eco      bool          `json:"eco,omitempty" yaml:"eco"`
}

type FurnitureInstance struct {
	ID       string        `json:"id"`
	Type     FurnitureType `json:"type"`
	Position Vec3          `json:"position"`
	Rotation float64       `json:"rotation"`
	Scale    float64       `json:"scale"`
	Color    string        `json:"color,omitempty"`
	Eco      bool          `json:"eco,omitempty"`
	Name     string        `json:"name"`
	Category string        `json:"category,omitempty"`
	ShopLink string        `json:"shopLink,omitempty"`
}

type TemplateItem struct {
	Type     FurnitureType `json:"type" yaml:"type"`
	Position Vec3          `json:"position" yaml:"position"`
	Rotation float64       `json:"rotation" yaml:"rotation"`
	Scale    float64       `json:"scale" yaml:"scale"`
	Color    string        `json:"color,omitempty" yaml:"color"`
}

type Template struct {
	Name  string         `json:"name" yaml:"name"`
	Items []TemplateItem `json:"items" yaml:"items"`
}

// ============================================================
// Rooms & settings
// ============================================================

type Room struct {
	Key       string              `json:"-"`
	Name      string              `json:"name"`
	Furniture []FurnitureInstance `json:"furniture"`
}

type CameraView string

const (
	CameraPerspective CameraView = "perspective"
	CameraTop         CameraView = "top"
	CameraFront       CameraView = "front"
	CameraSide        CameraView = "side"
)

func (v CameraView) Valid() bool {
	switch v {
	case CameraPerspective, CameraTop, CameraFront, CameraSide:
		return true
	}
	return false
}

type Settings struct {
	WallColor          string     `json:"wallColor"`
	FloorColor         string     `json:"floorColor"`
	RoomSize           float64    `json:"roomSize"`
	LightIntensity     float64    `json:"lightIntensity"`
	IsDayMode          bool       `json:"isDayMode"`
	CameraView         CameraView `json:"cameraView"`
	ShowMeasurements   bool       `json:"showMeasurements"`
	ShowGrid           bool       `json:"showGrid"`
	GridSnap           bool       `json:"gridSnap"`
	CollisionDetection bool       `json:"collisionDetection"`
}

const (
	MinRoomSize = 4.0
	MaxRoomSize = 30.0

	MinLightIntensity = 0.2
	MaxLightIntensity = 2.0
)

// DefaultSettings: начальные настройки редактора.
func DefaultSettings() Settings {
	return Settings{
		WallColor:          "#f5f5f0",
		FloorColor:         "#c9b8a0",
		RoomSize:           10,
		LightIntensity:     0.8,
		IsDayMode:          true,
		CameraView:         CameraPerspective,
		ShowMeasurements:   true,
		ShowGrid:           true,
		GridSnap:           false,
		CollisionDetection: true,
	}
}

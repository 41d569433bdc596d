package scene

import (
	"room-planner/internal/planner/catalog"
	"room-planner/internal/planner/history"
	"room-planner/internal/planner/metrics"
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/placement"

	"github.com/google/uuid"
)

// ============================================================
// Scene State Store
// ============================================================

// RoomDef: ключ и название одной из фиксированных комнат.
type RoomDef struct {
	Key  string
	Name string
}

// DefaultRooms: комнаты проекта; набор задаётся при старте и не меняется.
var DefaultRooms = []RoomDef{
	{Key: "livingRoom", Name: "Living Room"},
	{Key: "bedroom", Name: "Bedroom"},
	{Key: "kitchen", Name: "Kitchen"},
	{Key: "bathroom", Name: "Bathroom"},
}

const DefaultProjectName = "My Design"

type Options struct {
	Catalog      *catalog.Catalog
	Settings     models.Settings
	HistoryLimit int
	Rooms        []RoomDef
	// NewID переопределяет генератор идентификаторов (тесты).
	NewID func() string
}

type roomState struct {
	key       string
	name      string
	furniture []models.FurnitureInstance
	history   *history.Manager
}

// Store хранит состояние редактора. Все изменения идут через его методы.
// Не безопасен для конкурентного использования.
type Store struct {
	catalog     *catalog.Catalog
	rooms       []*roomState
	current     int
	selectedID  string
	settings    models.Settings
	projectName string
	notes       string
	clipboard   *models.FurnitureInstance
	dirty       bool
	newID       func() string
}

func New(opts Options) *Store {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Settings == (models.Settings{}) {
		opts.Settings = models.DefaultSettings()
	}
	if len(opts.Rooms) == 0 {
		opts.Rooms = DefaultRooms
	}
	if opts.NewID == nil {
		opts.NewID = newInstanceID
	}

	s := &Store{
		catalog:     opts.Catalog,
		settings:    opts.Settings,
		projectName: DefaultProjectName,
		newID:       opts.NewID,
	}
	s.settings.RoomSize = clampRoomSize(s.settings.RoomSize)

	for _, def := range opts.Rooms {
		h := history.New(opts.HistoryLimit)
		h.Reset(nil)
		s.rooms = append(s.rooms, &roomState{
			key:       def.Key,
			name:      def.Name,
			furniture: []models.FurnitureInstance{},
			history:   h,
		})
	}
	return s
}

// newInstanceID выдаёт UUIDv7: время генерации в миллисекундах плюс случайные биты.
func newInstanceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ============================================================
// Accessors
// ============================================================

func (s *Store) room() *roomState {
	return s.rooms[s.current]
}

func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

func (s *Store) CurrentRoom() string { return s.room().key }

func (s *Store) SelectedID() string { return s.selectedID }

func (s *Store) Settings() models.Settings { return s.settings }

func (s *Store) ProjectName() string { return s.projectName }

func (s *Store) Notes() string { return s.notes }

func (s *Store) CanUndo() bool { return s.room().history.CanUndo() }

func (s *Store) CanRedo() bool { return s.room().history.CanRedo() }

// HistoryActions: подписи снимков истории текущей комнаты.
func (s *Store) HistoryActions() []string { return s.room().history.Actions() }

// Furniture возвращает копию списка мебели текущей комнаты.
func (s *Store) Furniture() []models.FurnitureInstance {
	return history.Clone(s.room().furniture)
}

// Item ищет предмет в текущей комнате.
func (s *Store) Item(id string) (models.FurnitureInstance, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.room().furniture[i], true
	}
	return models.FurnitureInstance{}, false
}

// Rooms возвращает копии всех комнат в фиксированном порядке.
func (s *Store) Rooms() []models.Room {
	out := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, models.Room{Key: r.key, Name: r.name, Furniture: history.Clone(r.furniture)})
	}
	return out
}

func (s *Store) Metrics() metrics.Summary {
	return metrics.Compute(s.Rooms(), s.room().furniture, s.settings.RoomSize)
}

func (s *Store) engine() placement.Engine {
	return placement.New(s.settings)
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range s.room().furniture {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// commit записывает снимок текущей комнаты в её историю.
func (s *Store) commit(action string) {
	r := s.room()
	r.history.Commit(action, r.furniture)
	s.dirty = false
}

// uniqueID выдаёт идентификатор, которого ещё нет в текущей комнате.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

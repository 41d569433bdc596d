package scene

import (
	"math"

	"room-planner/internal/planner/models"
)

// ============================================================
// Item operations
// ============================================================

// AddItem ставит новый предмет из каталога в центр комнаты, выделяет его
// и фиксирует снимок истории.
func (s *Store) AddItem(entry models.CatalogEntry) string {
	item := models.FurnitureInstance{
		ID:       s.uniqueID(),
		Type:     entry.Type,
		Position: models.Vec3{0, 0, 0},
		Rotation: 0,
		Scale:    1,
		Eco:      entry.Eco,
		Name:     entry.Name,
		Category: entry.Category,
		ShopLink: entry.ShopLink,
	}
	r := s.room()
	r.furniture = append(r.furniture, item)
	s.selectedID = item.ID
	s.commit("add")
	return item.ID
}

// DeleteItem удаляет предмет; отсутствующий id игнорируется.
func (s *Store) DeleteItem(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	r := s.room()
	r.furniture = append(r.furniture[:i:i], r.furniture[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.commit("delete")
}

// RotateItem поворачивает предмет на π/4 вокруг оси Y.
func (s *Store) RotateItem(id string) {
	s.update(id, "rotate", func(item *models.FurnitureInstance) {
		item.Rotation = models.WrapRotation(item.Rotation + models.RotationStep)
	})
}

// RescaleItem задаёт масштаб, приводя его к [0.5, 3].
func (s *Store) RescaleItem(id string, scale float64) {
	s.update(id, "scale", func(item *models.FurnitureInstance) {
		item.Scale = models.ClampScale(scale)
	})
}

// RecolorItem задаёт цвет; пустая строка возвращает цвет типа.
func (s *Store) RecolorItem(id, color string) {
	s.update(id, "color", func(item *models.FurnitureInstance) {
		item.Color = color
	})
}

// update заменяет предмет обновлённой копией и фиксирует снимок.
func (s *Store) update(id, action string, fn func(*models.FurnitureInstance)) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	r := s.room()
	next := make([]models.FurnitureInstance, len(r.furniture))
	copy(next, r.furniture)
	item := next[i]
	fn(&item)
	next[i] = item
	r.furniture = next
	s.commit(action)
}

// MoveItem применяет правила размещения к кандидату. Снимок не фиксируется:
// это делает Commit по окончании перетаскивания.
func (s *Store) MoveItem(id string, candidate models.Vec3) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	r := s.room()
	pos, ok := s.engine().Place(r.furniture, i, candidate)
	if !ok {
		return false
	}
	next := make([]models.FurnitureInstance, len(r.furniture))
	copy(next, r.furniture)
	next[i].Position = pos
	r.furniture = next
	s.dirty = true
	return true
}

// Commit фиксирует перемещения, накопленные с прошлого снимка.
// Возвращает false, если фиксировать нечего.
func (s *Store) Commit() bool {
	if !s.dirty {
		return false
	}
	s.commit("move")
	return true
}

// ============================================================
// Selection & clipboard
// ============================================================

func (s *Store) Select(id string) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.selectedID = id
	return true
}

func (s *Store) ClearSelection() {
	s.selectedID = ""
}

// CopySelection запоминает выделенный предмет для вставки.
func (s *Store) CopySelection() bool {
	item, ok := s.Item(s.selectedID)
	if !ok {
		return false
	}
	s.clipboard = &item
	return true
}

func (s *Store) HasClipboard() bool { return s.clipboard != nil }

const pasteOffset = 0.5

// Paste вставляет копию со сдвигом на 0.5 по X и Z. Без копии ничего не делает.
func (s *Store) Paste() (string, bool) {
	if s.clipboard == nil {
		return "", false
	}
	item := *s.clipboard
	item.ID = s.uniqueID()
	item.Position = s.engine().Clamp(models.Vec3{
		item.Position[0] + pasteOffset,
		item.Position[1],
		item.Position[2] + pasteOffset,
	})
	r := s.room()
	r.furniture = append(r.furniture, item)
	s.selectedID = item.ID
	s.commit("paste")
	return item.ID, true
}

// ============================================================
// Batch operations
// ============================================================

// ApplyTemplate добавляет все предметы шаблона одним снимком.
func (s *Store) ApplyTemplate(name string) ([]string, bool) {
	tpl, err := s.catalog.Template(name)
	if err != nil {
		return nil, false
	}

	r := s.room()
	eng := s.engine()
	ids := make([]string, 0, len(tpl.Items))
	for _, ti := range tpl.Items {
		item := models.FurnitureInstance{
			ID:       s.uniqueID(),
			Type:     ti.Type,
			Position: eng.Clamp(ti.Position),
			Rotation: models.WrapRotation(ti.Rotation),
			Scale:    models.ClampScale(ti.Scale),
			Color:    ti.Color,
			Name:     string(ti.Type),
		}
		if entry, err := s.catalog.Entry(ti.Type); err == nil {
			item.Name = entry.Name
			item.Category = entry.Category
			item.ShopLink = entry.ShopLink
			item.Eco = entry.Eco
		}
		r.furniture = append(r.furniture, item)
		ids = append(ids, item.ID)
	}
	s.commit("template")
	return ids, true
}

const arrangeRadiusFactor = 0.25

// AutoArrange расставляет предметы по окружности радиуса roomSize/4
// лицом к центру.
func (s *Store) AutoArrange() bool {
	r := s.room()
	n := len(r.furniture)
	if n == 0 {
		return false
	}
	radius := s.settings.RoomSize * arrangeRadiusFactor
	eng := s.engine()
	next := make([]models.FurnitureInstance, n)
	for i, item := range r.furniture {
		angle := float64(i) / float64(n) * models.FullTurn
		item.Position = eng.Clamp(models.Vec3{
			math.Cos(angle) * radius,
			item.Position[1],
			math.Sin(angle) * radius,
		})
		item.Rotation = models.WrapRotation(angle + math.Pi/2)
		next[i] = item
	}
	r.furniture = next
	s.commit("arrange")
	return true
}

// ResetRoom очищает текущую комнату вместе с её историей.
func (s *Store) ResetRoom() {
	r := s.room()
	r.furniture = []models.FurnitureInstance{}
	r.history.Reset(r.furniture)
	s.selectedID = ""
	s.dirty = false
}

// ============================================================
// History
// ============================================================

func (s *Store) Undo() bool {
	r := s.room()
	furniture, ok := r.history.Undo()
	if !ok {
		return false
	}
	s.restore(furniture)
	return true
}

func (s *Store) Redo() bool {
	r := s.room()
	furniture, ok := r.history.Redo()
	if !ok {
		return false
	}
	s.restore(furniture)
	return true
}

// restore подставляет снимок истории. Позиции прижимаются к текущим стенам:
// снимок мог быть сделан до уменьшения комнаты.
func (s *Store) restore(furniture []models.FurnitureInstance) {
	eng := s.engine()
	next := make([]models.FurnitureInstance, len(furniture))
	for i, item := range furniture {
		item.Position = eng.Clamp(item.Position)
		next[i] = item
	}
	s.room().furniture = next
	s.dirty = false
	if s.indexOf(s.selectedID) < 0 {
		s.selectedID = ""
	}
}

package history

import (
	"log"

	"room-planner/internal/planner/models"

	"github.com/jinzhu/copier"
)

// ============================================================
// History Manager
// ============================================================

// DefaultLimit: сколько снимков хранится, пока не начнут отбрасываться старые.
const DefaultLimit = 100

// Entry: один снимок списка мебели после завершённого действия.
type Entry struct {
	Action    string
	Furniture []models.FurnitureInstance
}

// Manager: линейный стек снимков с текущим индексом.
// Индекс 0 это нижняя граница undo, len-1 верхняя граница redo.
type Manager struct {
	entries []Entry
	index   int
	limit   int
}

func New(limit int) *Manager {
	if limit < 2 {
		limit = DefaultLimit
	}
	return &Manager{index: -1, limit: limit}
}

// Reset очищает стек и кладёт единственный исходный снимок.
func (m *Manager) Reset(furniture []models.FurnitureInstance) {
	m.entries = []Entry{{Action: "initial", Furniture: Clone(furniture)}}
	m.index = 0
}

// Commit отбрасывает всё после текущего индекса и добавляет снимок.
func (m *Manager) Commit(action string, furniture []models.FurnitureInstance) {
	m.entries = append(m.entries[:m.index+1], Entry{Action: action, Furniture: Clone(furniture)})
	if len(m.entries) > m.limit {
		drop := len(m.entries) - m.limit
		m.entries = append([]Entry(nil), m.entries[drop:]...)
	}
	m.index = len(m.entries) - 1
}

// Undo сдвигает индекс назад и возвращает копию снимка.
func (m *Manager) Undo() ([]models.FurnitureInstance, bool) {
	if !m.CanUndo() {
		return nil, false
	}
	m.index--
	return Clone(m.entries[m.index].Furniture), true
}

// Redo сдвигает индекс вперёд и возвращает копию снимка.
func (m *Manager) Redo() ([]models.FurnitureInstance, bool) {
	if !m.CanRedo() {
		return nil, false
	}
	m.index++
	return Clone(m.entries[m.index].Furniture), true
}

func (m *Manager) CanUndo() bool { return m.index > 0 }

func (m *Manager) CanRedo() bool { return m.index >= 0 && m.index < len(m.entries)-1 }

func (m *Manager) Len() int { return len(m.entries) }

func (m *Manager) Index() int { return m.index }

// Actions возвращает подписи снимков по порядку.
func (m *Manager) Actions() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

// Clone делает глубокую копию списка мебели.
func Clone(furniture []models.FurnitureInstance) []models.FurnitureInstance {
	out := make([]models.FurnitureInstance, 0, len(furniture))
	if err := copier.CopyWithOption(&out, &furniture, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("[HISTORY] deep copy failed: %v", err)
		out = append(out[:0], furniture...)
	}
	if out == nil {
		out = []models.FurnitureInstance{}
	}
	return out
}

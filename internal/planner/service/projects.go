package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"room-planner/internal/planner/scene"

	"github.com/google/uuid"
)

// ============================================================
// Project registry
// ============================================================

var ErrProjectNotFound = errors.New("project not found")

// Project: один открытый редактор. Операции над его Store выполняются
// строго по одной, в порядке поступления.
type Project struct {
	ID        string
	CreatedAt time.Time

	seq   int
	mu    sync.Mutex
	store *scene.Store
}

// Do выполняет fn под замком проекта.
func (p *Project) Do(fn func(*scene.Store) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.store)
}

type Projects struct {
	mu       sync.Mutex
	projects map[string]*Project
	factory  func() *scene.Store
	seq      int
}

// NewProjects создаёт реестр; factory строит Store для нового проекта.
func NewProjects(factory func() *scene.Store) *Projects {
	return &Projects{
		projects: make(map[string]*Project),
		factory:  factory,
	}
}

func (m *Projects) Create() *Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	p := &Project{
		seq:       m.seq,
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		store:     m.factory(),
	}
	m.projects[p.ID] = p
	return p
}

func (m *Projects) Get(id string) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (m *Projects) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

// List возвращает id проектов в порядке создания.
func (m *Projects) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := make([]*Project, 0, len(m.projects))
	for _, p := range m.projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].seq < list[j].seq })

	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

package service

import (
	"sync"
	"testing"

	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjects() *Projects {
	return NewProjects(func() *scene.Store { return scene.New(scene.Options{}) })
}

func TestProjectsLifecycle(t *testing.T) {
	m := newProjects()

	a := m.Create()
	b := m.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []string{a.ID, b.ID}, m.List())

	got, err := m.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, m.Delete(a.ID))
	_, err = m.Get(a.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, m.Delete(a.ID), ErrProjectNotFound)
	assert.Equal(t, []string{b.ID}, m.List())
}

func TestProjectsHaveSeparateStores(t *testing.T) {
	m := newProjects()
	a, b := m.Create(), m.Create()

	require.NoError(t, a.Do(func(s *scene.Store) error {
		entry, err := s.Catalog().Entry(models.TypeSofa)
		if err != nil {
			return err
		}
		s.AddItem(entry)
		return nil
	}))

	_ = b.Do(func(s *scene.Store) error {
		assert.Empty(t, s.Furniture())
		return nil
	})
}

func TestProjectDoSerializes(t *testing.T) {
	m := newProjects()
	p := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(func(s *scene.Store) error {
				entry, _ := s.Catalog().Entry(models.TypeChair)
				s.AddItem(entry)
				return nil
			})
		}()
	}
	wg.Wait()

	_ = p.Do(func(s *scene.Store) error {
		assert.Len(t, s.Furniture(), 20)
		assert.Len(t, s.HistoryActions(), 21)
		return nil
	})
}

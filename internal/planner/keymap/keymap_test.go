package keymap

import (
	"testing"

	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithItem(t *testing.T) (*scene.Store, string) {
	t.Helper()
	s := scene.New(scene.Options{})
	entry, err := s.Catalog().Entry(models.TypeChair)
	require.NoError(t, err)
	return s, s.AddItem(entry)
}

func TestTextInputsIgnored(t *testing.T) {
	s, id := storeWithItem(t)

	for _, target := range []string{"INPUT", "textarea"} {
		res := Dispatch(s, KeyEvent{Key: "Delete", Target: target})
		assert.False(t, res.Handled)
		res = Dispatch(s, KeyEvent{Key: "z", Ctrl: true, Target: target})
		assert.False(t, res.Handled)
	}

	_, ok := s.Item(id)
	assert.True(t, ok)
}

func TestUndoRedoKeys(t *testing.T) {
	s, _ := storeWithItem(t)

	res := Dispatch(s, KeyEvent{Key: "z", Ctrl: true})
	assert.Equal(t, Result{Action: "undo", Handled: true, PreventDefault: true}, res)
	assert.Empty(t, s.Furniture())

	res = Dispatch(s, KeyEvent{Key: "Y", Meta: true})
	assert.Equal(t, "redo", res.Action)
	assert.Len(t, s.Furniture(), 1)
}

func TestCopyPasteKeys(t *testing.T) {
	s, id := storeWithItem(t)

	res := Dispatch(s, KeyEvent{Key: "c", Ctrl: true})
	assert.Equal(t, "copy", res.Action)
	assert.False(t, res.PreventDefault)

	res = Dispatch(s, KeyEvent{Key: "v", Ctrl: true})
	assert.Equal(t, "paste", res.Action)
	assert.Len(t, s.Furniture(), 2)
	assert.NotEqual(t, id, s.SelectedID())

	s.ClearSelection()
	res = Dispatch(s, KeyEvent{Key: "c", Ctrl: true})
	assert.False(t, res.Handled)
}

func TestItemKeys(t *testing.T) {
	s, id := storeWithItem(t)

	res := Dispatch(s, KeyEvent{Key: "R"})
	assert.Equal(t, "rotate", res.Action)
	item, _ := s.Item(id)
	assert.Greater(t, item.Rotation, 0.0)

	res = Dispatch(s, KeyEvent{Key: "Escape"})
	assert.Equal(t, "deselect", res.Action)
	assert.Empty(t, s.SelectedID())

	res = Dispatch(s, KeyEvent{Key: "Delete"})
	assert.False(t, res.Handled)

	require.True(t, s.Select(id))
	res = Dispatch(s, KeyEvent{Key: "Backspace"})
	assert.Equal(t, Result{Action: "delete", Handled: true, PreventDefault: true}, res)
	assert.Empty(t, s.Furniture())
}

func TestCameraKeys(t *testing.T) {
	s := scene.New(scene.Options{})

	res := Dispatch(s, KeyEvent{Key: "2"})
	assert.Equal(t, "camera:top", res.Action)
	assert.Equal(t, models.CameraTop, s.Settings().CameraView)

	res = Dispatch(s, KeyEvent{Key: "4"})
	assert.Equal(t, models.CameraSide, s.Settings().CameraView)
	assert.True(t, res.Handled)

	res = Dispatch(s, KeyEvent{Key: "9"})
	assert.False(t, res.Handled)
}

func TestModifierDoesNotBlockPlainKeys(t *testing.T) {
	s, id := storeWithItem(t)

	res := Dispatch(s, KeyEvent{Key: "2", Ctrl: true})
	assert.Equal(t, "camera:top", res.Action)
	assert.Equal(t, models.CameraTop, s.Settings().CameraView)

	res = Dispatch(s, KeyEvent{Key: "1", Meta: true})
	assert.Equal(t, "camera:perspective", res.Action)
	assert.Equal(t, models.CameraPerspective, s.Settings().CameraView)

	res = Dispatch(s, KeyEvent{Key: "r", Ctrl: true})
	assert.Equal(t, "rotate", res.Action)
	item, _ := s.Item(id)
	assert.Greater(t, item.Rotation, 0.0)

	res = Dispatch(s, KeyEvent{Key: "Escape", Ctrl: true})
	assert.Equal(t, "deselect", res.Action)
	assert.Empty(t, s.SelectedID())

	res = Dispatch(s, KeyEvent{Key: "x", Ctrl: true})
	assert.False(t, res.Handled)
}

package keymap

import (
	"strings"

	"room-planner/internal/planner/models"
	"room-planner/internal/planner/scene"
)

// ============================================================
// Keyboard shortcuts
// ============================================================

// KeyEvent: нажатие клавиши в браузере (поля как у KeyboardEvent).
type KeyEvent struct {
	Key    string `json:"key"`
	Ctrl   bool   `json:"ctrlKey"`
	Meta   bool   `json:"metaKey"`
	Target string `json:"target"` // tagName элемента с фокусом
}

type Result struct {
	Action         string `json:"action,omitempty"`
	Handled        bool   `json:"handled"`
	PreventDefault bool   `json:"preventDefault"`
}

var cameraKeys = map[string]models.CameraView{
	"1": models.CameraPerspective,
	"2": models.CameraTop,
	"3": models.CameraFront,
	"4": models.CameraSide,
}

// Dispatch выполняет операцию, привязанную к клавише.
// Ввод в текстовых полях игнорируется.
func Dispatch(s *scene.Store, ev KeyEvent) Result {
	switch strings.ToUpper(ev.Target) {
	case "INPUT", "TEXTAREA":
		return Result{}
	}

	if ev.Ctrl || ev.Meta {
		if res, ok := dispatchShortcut(s, ev); ok {
			return res
		}
	}

	switch ev.Key {
	case "r", "R":
		if s.SelectedID() == "" {
			return Result{}
		}
		s.RotateItem(s.SelectedID())
		return Result{Action: "rotate", Handled: true}
	case "Delete", "Backspace":
		if s.SelectedID() == "" {
			return Result{}
		}
		s.DeleteItem(s.SelectedID())
		return Result{Action: "delete", Handled: true, PreventDefault: true}
	case "Escape":
		s.ClearSelection()
		return Result{Action: "deselect", Handled: true}
	}

	if view, ok := cameraKeys[ev.Key]; ok {
		s.SetCameraView(view)
		return Result{Action: "camera:" + string(view), Handled: true}
	}
	return Result{}
}

// dispatchShortcut обрабатывает сочетания с Ctrl/Cmd. Остальные клавиши
// с модификатором работают так же, как без него.
func dispatchShortcut(s *scene.Store, ev KeyEvent) (Result, bool) {
	switch strings.ToLower(ev.Key) {
	case "z":
		s.Undo()
		return Result{Action: "undo", Handled: true, PreventDefault: true}, true
	case "y":
		s.Redo()
		return Result{Action: "redo", Handled: true, PreventDefault: true}, true
	case "c":
		if !s.CopySelection() {
			return Result{}, true
		}
		return Result{Action: "copy", Handled: true}, true
	case "v":
		s.Paste()
		return Result{Action: "paste", Handled: true, PreventDefault: true}, true
	}
	return Result{}, false
}

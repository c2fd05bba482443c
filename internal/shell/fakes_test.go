package shell

import (
	"bytes"
	"sync"
)

var (
	idleIcon      = []byte("idle-png")
	recordingIcon = []byte("recording-png")
	testAssets    = Assets{Idle: idleIcon, Recording: recordingIcon}
)

type fakeTray struct {
	mu    sync.Mutex
	icons [][]byte
	err   error
}

func (f *fakeTray) SetIcon(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.icons = append(f.icons, data)
	return nil
}

func (f *fakeTray) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.icons)
}

func (f *fakeTray) last() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.icons) == 0 {
		return nil
	}
	return f.icons[len(f.icons)-1]
}

func (f *fakeTray) showing(data []byte) bool {
	return bytes.Equal(f.last(), data)
}

type position struct{ x, y int }

type fakeWindow struct {
	visible bool

	isVisibleCalls int
	hideCalls      int
	showCalls      int
	focusCalls     int
	positions      []position

	// order records every mutating call.
	order []string

	isVisibleErr error
	showErr      error
	focusErr     error
	positionErr  error
}

func (w *fakeWindow) IsVisible() (bool, error) {
	w.isVisibleCalls++
	if w.isVisibleErr != nil {
		return false, w.isVisibleErr
	}
	return w.visible, nil
}

func (w *fakeWindow) Hide() error {
	w.hideCalls++
	w.order = append(w.order, "hide")
	w.visible = false
	return nil
}

func (w *fakeWindow) Show() error {
	w.showCalls++
	if w.showErr != nil {
		return w.showErr
	}
	w.order = append(w.order, "show")
	w.visible = true
	return nil
}

func (w *fakeWindow) Focus() error {
	w.focusCalls++
	if w.focusErr != nil {
		return w.focusErr
	}
	w.order = append(w.order, "focus")
	return nil
}

func (w *fakeWindow) SetPosition(x, y int) error {
	if w.positionErr != nil {
		return w.positionErr
	}
	w.order = append(w.order, "position")
	w.positions = append(w.positions, position{x, y})
	return nil
}

package window

func (w *Window) markDirtyLine(y int) {
	if y < 0 || y >= w.Height {
		return
	}
	w.bumpVersion()
	if len(w.dirty) != w.Height {
		w.dirty = make([]bool, w.Height)
	}
	w.dirty[y] = true
}

func (w *Window) markDirtyRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end >= w.Height {
		end = w.Height - 1
	}
	for y := start; y <= end; y++ {
		w.markDirtyLine(y)
	}
}

// DirtyLines returns the per-line change flags since the last ClearDirty.
func (w *Window) DirtyLines() []bool {
	return w.dirty
}

// ClearDirty resets change tracking after the caller has consumed it.
func (w *Window) ClearDirty() {
	for i := range w.dirty {
		w.dirty[i] = false
	}
}

// Version returns the current version counter.
// This increments whenever content or the cursor changes.
func (w *Window) Version() uint64 {
	return w.version
}

func (w *Window) bumpVersion() {
	w.version++
}

func (w *Window) bumpVersionIfCursorMoved(prevX, prevY int) {
	if w.CursorX != prevX || w.CursorY != prevY {
		w.bumpVersion()
	}
}

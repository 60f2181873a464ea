package app

import (
	"context"
	"fmt"

	"github.com/bethropolis/jdiff/internal/input"
	"github.com/bethropolis/jdiff/internal/logger"
	"github.com/bethropolis/jdiff/internal/render"
	"github.com/bethropolis/jdiff/internal/state"
)

// draw renders snap. The first frame sizes the editors, and a pending resize
// is applied before drawing, so the returned snapshot may be newer.
func (a *App) draw(ctx context.Context, snap state.Snapshot) (state.Snapshot, error) {
	_, height := a.tuiManager.Size()
	editorHeight := render.EditorHeight(height)

	var err error
	switch {
	case !snap.Initialized:
		snap, err = a.owner.Apply(ctx, input.InitEditor(editorHeight))
	case snap.ResizePending:
		snap, err = a.owner.Apply(ctx, input.ResizeEditor(editorHeight))
	}
	if err != nil {
		return snap, fmt.Errorf("failed to size editors: %w", err)
	}

	if snap.ShouldQuit {
		return snap, nil
	}

	logger.DebugTagf("draw", "App: frame route=%s mode=%s editor height=%d", snap.Route, snap.Mode, editorHeight)
	a.statusBar.Sync(snap)
	render.Frame(a.tuiManager.Screen(), snap, a.themeManager.Current(), a.statusBar)
	a.tuiManager.Show()
	return snap, nil
}

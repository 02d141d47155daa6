package ui

import (
	"github.com/gdamore/tcell/v2"
)

// mainHandler is the default mode: the full-width download table.
type mainHandler struct {
	d *Dashboard
}

func (m *mainHandler) handleKey(ev *tcell.EventKey) error {
	d := m.d
	switch {
	case ActionQuit.Matches(ev):
		return errQuit

	case ActionHelp.Matches(ev):
		d.mode = ModeHelp
		d.redraw = true

	case ActionUp.Matches(ev):
		if d.focused > 0 {
			d.focused--
		}
		d.followGID = ""
		d.ensureFocusVisible()
		d.redraw = true

	case ActionDown.Matches(ev):
		if d.focused < len(d.rows)-1 {
			d.focused++
		}
		d.followGID = ""
		d.ensureFocusVisible()
		d.redraw = true

	case ActionLeft.Matches(ev):
		d.xScroll -= scrollStep
		if d.xScroll < 0 {
			d.xScroll = 0
		}
		d.redraw = true

	case ActionRight.Matches(ev):
		d.xScroll += scrollStep
		d.redraw = true

	case ActionTogglePause.Matches(ev):
		dl := d.focusedDownload()
		if dl == nil {
			return nil
		}
		switch {
		case dl.IsActive() || dl.IsWaiting():
			return d.service.Pause(d.ctx, dl.GID)
		case dl.IsPaused():
			return d.service.Resume(d.ctx, dl.GID)
		}

	case ActionPriorityUp.Matches(ev):
		dl := d.focusedDownload()
		if dl == nil || dl.IsActive() {
			return nil
		}
		if err := d.service.Reorder(d.ctx, dl.GID, -1); err != nil {
			return err
		}
		d.followGID = dl.GID

	case ActionPriorityDown.Matches(ev):
		dl := d.focusedDownload()
		if dl == nil || dl.IsActive() {
			return nil
		}
		if err := d.service.Reorder(d.ctx, dl.GID, 1); err != nil {
			return err
		}
		d.followGID = dl.GID

	case ActionReverseSort.Matches(ev):
		d.setSort(d.sortIdx, !d.reverse)

	case ActionNextSort.Matches(ev):
		d.setSort(d.sortIdx+1, d.reverse)

	case ActionPreviousSort.Matches(ev):
		d.setSort(d.sortIdx-1, d.reverse)

	case ActionSelectSort.Matches(ev):
		d.mode = ModeSelectSort
		d.sideFocus = d.sortIdx
		d.xOffset = panelWidth(sortPanelHeader, sortPanelLabels()) + 1
		d.redraw = true

	case ActionRemoveAsk.Matches(ev):
		dl := d.focusedDownload()
		if dl == nil {
			return nil
		}
		d.followGID = dl.GID
		d.mode = ModeRemoveConfirm
		d.sideFocus = 0
		if d.lastRemoveChoice >= 0 {
			d.sideFocus = d.lastRemoveChoice
		}
		d.xOffset = panelWidth(removePanelHeader, removeLabels()) + 1
		d.redraw = true

	case ActionAutoClear.Matches(ev):
		return d.service.PurgeCompleted(d.ctx)

	case ActionFollowRow.Matches(ev):
		if dl := d.focusedDownload(); dl != nil {
			d.followGID = dl.GID
		}

	case ActionSetup.Matches(ev),
		ActionToggleExpand.Matches(ev),
		ActionToggleExpandAll.Matches(ev),
		ActionSearch.Matches(ev),
		ActionFilter.Matches(ev),
		ActionToggleSelect.Matches(ev),
		ActionUnselectAll.Matches(ev):
		// Recognized, reserved for future features.
	}
	return nil
}

func (m *mainHandler) handleMouse(x, y int) error {
	d := m.d
	if y == 0 {
		idx, err := d.columnAt(x)
		if err != nil {
			return err
		}
		if idx == d.sortIdx {
			d.setSort(d.sortIdx, !d.reverse)
		} else {
			d.setSort(idx, d.reverse)
		}
		return nil
	}
	row := d.rowOffset + y - 1
	if row >= len(d.rows) {
		row = len(d.rows) - 1
	}
	if row < 0 {
		row = 0
	}
	d.focused = row
	d.ensureFocusVisible()
	d.redraw = true
	return nil
}

func (m *mainHandler) paint() {
	m.d.paintTable()
}

// helpHandler shows the key bindings; any input returns to the table.
type helpHandler struct {
	d *Dashboard
}

func (h *helpHandler) handleKey(*tcell.EventKey) error {
	h.d.mode = ModeMain
	h.d.redraw = true
	return nil
}

func (h *helpHandler) handleMouse(int, int) error {
	h.d.mode = ModeMain
	h.d.redraw = true
	return nil
}

func (h *helpHandler) paint() {
	h.d.paintHelp()
}

// setupHandler is reserved; the mode is never entered yet.
type setupHandler struct {
	d *Dashboard
}

func (s *setupHandler) handleKey(*tcell.EventKey) error {
	s.d.mode = ModeMain
	s.d.redraw = true
	return nil
}

func (s *setupHandler) handleMouse(int, int) error { return nil }

func (s *setupHandler) paint() {
	s.d.paintTable()
}

// removeHandler confirms one of the four remove variants against the
// followed download.
type removeHandler struct {
	d *Dashboard
}

// removeChoice is one entry of the remove menu.
type removeChoice struct {
	label string
	force bool
	files bool
}

var removeMenu = []removeChoice{
	{label: "Remove", force: false, files: false},
	{label: "Remove with files", force: false, files: true},
	{label: "Force remove", force: true, files: false},
	{label: "Force remove with files", force: true, files: true},
}

const removePanelHeader = "Remove:"

func removeLabels() []string {
	labels := make([]string, len(removeMenu))
	for i, c := range removeMenu {
		labels[i] = c.label
	}
	return labels
}

func (r *removeHandler) handleKey(ev *tcell.EventKey) error {
	d := r.d
	switch {
	case ActionQuit.Matches(ev):
		return errQuit

	case ActionUp.Matches(ev):
		if d.sideFocus > 0 {
			d.sideFocus--
		}
		d.redraw = true

	case ActionDown.Matches(ev):
		if d.sideFocus < len(removeMenu)-1 {
			d.sideFocus++
		}
		d.redraw = true

	case ActionCancel.Matches(ev):
		d.mode = ModeMain
		d.xOffset = 0
		d.redraw = true

	case ActionEnter.Matches(ev):
		choice := removeMenu[d.sideFocus]
		if dl := d.followedDownload(); dl != nil {
			// On failure the menu stays open and the choice is not recorded.
			if err := d.service.Remove(d.ctx, dl, choice.force, choice.files); err != nil {
				return err
			}
		}
		d.lastRemoveChoice = d.sideFocus
		d.followGID = ""
		d.mode = ModeMain
		d.xOffset = 0
		d.frame = 0
		d.redraw = true
	}
	return nil
}

func (r *removeHandler) handleMouse(int, int) error { return nil }

func (r *removeHandler) paint() {
	r.d.paintSidePanel(removePanelHeader, removeLabels())
	r.d.paintTable()
}

// selectSortHandler picks the sort column from a side panel.
type selectSortHandler struct {
	d *Dashboard
}

const sortPanelHeader = "Sort by:"

func sortPanelLabels() []string {
	labels := make([]string, len(columnOrder))
	for i, c := range columnOrder {
		labels[i] = c.Name()
	}
	return labels
}

func (s *selectSortHandler) handleKey(ev *tcell.EventKey) error {
	d := s.d
	switch {
	case ActionQuit.Matches(ev):
		return errQuit

	case ActionUp.Matches(ev):
		if d.sideFocus > 0 {
			d.sideFocus--
		}
		d.redraw = true

	case ActionDown.Matches(ev):
		if d.sideFocus < len(columnOrder)-1 {
			d.sideFocus++
		}
		d.redraw = true

	case ActionCancel.Matches(ev):
		d.mode = ModeMain
		d.xOffset = 0
		d.redraw = true

	case ActionEnter.Matches(ev):
		d.mode = ModeMain
		d.xOffset = 0
		d.setSort(d.sideFocus, d.reverse)
	}
	return nil
}

func (s *selectSortHandler) handleMouse(int, int) error { return nil }

func (s *selectSortHandler) paint() {
	s.d.paintSidePanel(sortPanelHeader, sortPanelLabels())
	s.d.paintTable()
}

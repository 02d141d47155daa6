// Package ui implements the interactive dashboard: a fixed-rate render loop
// over a tcell screen, mode-based input dispatch, and absolute-position
// painting with horizontal scroll clipping.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"aria2top/internal/aria2"
	"aria2top/internal/prefs"
	"aria2top/internal/state"
)

// TaskService is the command side of the daemon client consumed by the
// dashboard.
type TaskService interface {
	Pause(ctx context.Context, gid string) error
	Resume(ctx context.Context, gid string) error
	Reorder(ctx context.Context, gid string, step int) error
	Remove(ctx context.Context, d *aria2.Download, force, files bool) error
	PurgeCompleted(ctx context.Context) error
}

// Options configure the dashboard.
type Options struct {
	Context     context.Context
	Service     TaskService
	Store       *state.Store
	Logger      *slog.Logger
	PrefsPath   string
	SortColumn  string
	SortReverse bool

	// Screen overrides the terminal screen, for tests.
	Screen tcell.Screen
}

// errQuit unwinds the render loop on a deliberate exit. Not an error.
var errQuit = errors.New("quit")

const (
	frameInterval = 5 * time.Millisecond
	frameCycle    = 200

	// Left/Right arrow horizontal scroll step, in cells.
	scrollStep = 5
)

// Mode is the current UI state.
type Mode int

const (
	ModeMain Mode = iota
	ModeHelp
	ModeSetup
	ModeRemoveConfirm
	ModeSelectSort
)

// modeHandler is implemented once per mode.
type modeHandler interface {
	handleKey(ev *tcell.EventKey) error
	handleMouse(x, y int) error
	paint()
}

// Dashboard owns the screen, the view state, and the data cache. A single
// goroutine (the render loop) reads and writes all of it.
type Dashboard struct {
	ctx     context.Context
	screen  tcell.Screen
	scroll  *HorizontalScroll
	service TaskService
	store   *state.Store
	logger  *slog.Logger

	prefsPath string

	mainMode   *mainHandler
	helpMode   *helpHandler
	setupMode  *setupHandler
	removeMode *removeHandler
	sortMode   *selectSortHandler

	mode    Mode
	width   int
	height  int
	frame   int
	redraw  bool
	resized bool

	focused   int
	rowOffset int
	xScroll   int
	xOffset   int
	sideFocus int
	sortIdx   int
	reverse   bool

	// followGID tracks a download across refreshes by identity; the list is
	// rebuilt wholesale every cycle so an index would go stale.
	followGID        string
	lastRemoveChoice int

	// bounds holds inclusive [start, end] header cell ranges per column, for
	// mouse hit-testing.
	bounds [][2]int
	widths []int

	data    []aria2.Download
	rows    [][]string
	stat    aria2.GlobalStat
	hasStat bool
	offline bool
}

// Run drives the dashboard until the user quits or the context is cancelled.
func Run(opts Options) error {
	d, err := newDashboard(opts)
	if err != nil {
		return err
	}
	defer d.screen.Fini()
	return d.run()
}

func newDashboard(opts Options) (*Dashboard, error) {
	if opts.Service == nil {
		return nil, errors.New("ui: nil task service")
	}
	if opts.Store == nil {
		return nil, errors.New("ui: nil store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.SetStyle(Style(PaletteDefault))
	screen.HideCursor()

	d := &Dashboard{
		ctx:              ctx,
		screen:           screen,
		scroll:           NewHorizontalScroll(screen),
		service:          opts.Service,
		store:            opts.Store,
		logger:           logger,
		prefsPath:        opts.PrefsPath,
		sortIdx:          columnIndex(opts.SortColumn),
		reverse:          opts.SortReverse,
		lastRemoveChoice: -1,
	}
	d.mainMode = &mainHandler{d}
	d.helpMode = &helpHandler{d}
	d.setupMode = &setupHandler{d}
	d.removeMode = &removeHandler{d}
	d.sortMode = &selectSortHandler{d}

	d.applyScreenSize()
	d.reloadData()
	d.sortData()
	d.rebuildRows()
	return d, nil
}

func (d *Dashboard) handler() modeHandler {
	switch d.mode {
	case ModeHelp:
		return d.helpMode
	case ModeSetup:
		return d.setupMode
	case ModeRemoveConfirm:
		return d.removeMode
	case ModeSelectSort:
		return d.sortMode
	default:
		return d.mainMode
	}
}

// run is the frame loop. Each iteration drains pending input, refreshes data
// on the cycle boundary, paints when something changed, and sleeps a fixed
// interval so input bursts cannot starve rendering.
func (d *Dashboard) run() error {
	for {
		select {
		case <-d.ctx.Done():
			return nil
		default:
		}

		prevSort, prevReverse := d.sortIdx, d.reverse
		d.redraw = false

		for d.screen.HasPendingEvent() {
			ev := d.screen.PollEvent()
			if ev == nil {
				return nil
			}
			if err := d.processEvent(ev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				// One bad event must not drop the rest of the queue.
				d.logger.Error("event handling failed", "err", err)
			}
		}

		if d.resized {
			d.resized = false
			d.screen.Sync()
			d.applyScreenSize()
			d.redraw = true
		}

		if d.frame == 0 {
			d.reloadData()
			d.sortData()
			d.rebuildRows()
			d.resolveFollow()
			d.redraw = true
		}

		if d.redraw {
			if d.frame != 0 && (d.sortIdx != prevSort || d.reverse != prevReverse) {
				d.sortData()
				d.rebuildRows()
				d.resolveFollow()
			}
			d.screen.Clear()
			d.handler().paint()
			d.screen.Show()
		}

		select {
		case <-d.ctx.Done():
			return nil
		case <-time.After(frameInterval):
		}
		d.frame = (d.frame + 1) % frameCycle
	}
}

func (d *Dashboard) processEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.resized = true
		return nil
	case *tcell.EventKey:
		return d.handler().handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			return d.handler().handleMouse(x, y)
		}
		return nil
	default:
		return nil
	}
}

// reloadData pulls the poller's latest snapshot into the render loop's
// private cache.
func (d *Dashboard) reloadData() {
	snap := d.store.Snapshot()
	d.data = snap.Downloads
	d.stat = snap.Stat
	d.hasStat = snap.HasStat
	d.offline = snap.IsOffline()
}

func (d *Dashboard) sortData() {
	col := columnOrder[d.sortIdx]
	sort.SliceStable(d.data, func(i, j int) bool {
		if d.reverse {
			i, j = j, i
		}
		return col.Less(&d.data[i], &d.data[j])
	})
}

func (d *Dashboard) rebuildRows() {
	rows := make([][]string, len(d.data))
	for i := range d.data {
		cells := make([]string, len(columnOrder))
		for c, col := range columnOrder {
			cells[c] = col.Text(&d.data[i])
		}
		rows[i] = cells
	}
	d.rows = rows
	d.clampFocus()
}

// resolveFollow moves focus to the followed download after a refresh or
// re-sort. A followed download that vanished clears the relation.
func (d *Dashboard) resolveFollow() {
	if d.followGID == "" {
		return
	}
	for i := range d.data {
		if d.data[i].GID == d.followGID {
			d.focused = i
			d.ensureFocusVisible()
			return
		}
	}
	d.followGID = ""
}

func (d *Dashboard) clampFocus() {
	if d.focused >= len(d.data) {
		d.focused = len(d.data) - 1
	}
	if d.focused < 0 {
		d.focused = 0
	}
	d.ensureFocusVisible()
}

// ensureFocusVisible keeps the focused row within the height-1 row window
// below the header.
func (d *Dashboard) ensureFocusVisible() {
	window := d.height - 1
	if window < 1 {
		window = 1
	}
	if d.focused < d.rowOffset {
		d.rowOffset = d.focused
	}
	if d.focused >= d.rowOffset+window {
		d.rowOffset = d.focused - window + 1
	}
	if d.rowOffset < 0 {
		d.rowOffset = 0
	}
}

func (d *Dashboard) followedDownload() *aria2.Download {
	if d.followGID == "" {
		return nil
	}
	for i := range d.data {
		if d.data[i].GID == d.followGID {
			return &d.data[i]
		}
	}
	return nil
}

func (d *Dashboard) focusedDownload() *aria2.Download {
	if len(d.data) == 0 || d.focused < 0 || d.focused >= len(d.data) {
		return nil
	}
	return &d.data[d.focused]
}

// applyScreenSize recomputes column layout. Fixed columns keep their widths;
// the fill column takes whatever is left, never less than its header.
func (d *Dashboard) applyScreenSize() {
	d.width, d.height = d.screen.Size()

	widths := make([]int, len(columnOrder))
	bounds := make([][2]int, len(columnOrder))
	x := 0
	for i, col := range columnOrder {
		w := col.Width()
		if w == 0 {
			w = d.width - x
			if minW := len(col.Header()); w < minW {
				w = minW
			}
		}
		widths[i] = w
		bounds[i] = [2]int{x, x + w - 1}
		x += w + 1
	}
	d.widths = widths
	d.bounds = bounds
}

// columnAt resolves a header cell x position to a column index. Positions in
// the single-cell gaps between columns, or past the last column, miss.
func (d *Dashboard) columnAt(x int) (int, error) {
	for i, b := range d.bounds {
		if x >= b[0] && x <= b[1] {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no column at x=%d", x)
}

// setSort records a new sort order and persists it.
func (d *Dashboard) setSort(idx int, reverse bool) {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(columnOrder) {
		idx = len(columnOrder) - 1
	}
	d.sortIdx = idx
	d.reverse = reverse
	d.redraw = true
	d.savePrefs()
}

func (d *Dashboard) savePrefs() {
	p := prefs.Prefs{Sort: columnOrder[d.sortIdx].Name(), Reverse: d.reverse}
	if err := prefs.Save(d.prefsPath, p); err != nil {
		d.logger.Warn("save preferences failed", "err", err)
	}
}

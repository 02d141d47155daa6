package ui

import "fmt"

// helpEntries lists the documented bindings in display order. Stubbed
// actions are omitted until they do something.
var helpEntries = []struct {
	action Action
	desc   string
}{
	{ActionHelp, "show this help screen"},
	{ActionTogglePause, "pause or resume the focused download"},
	{ActionPriorityUp, "move the focused download up the queue"},
	{ActionPriorityDown, "move the focused download down the queue"},
	{ActionReverseSort, "reverse the sort order"},
	{ActionNextSort, "sort by the next column"},
	{ActionPreviousSort, "sort by the previous column"},
	{ActionSelectSort, "choose the sort column"},
	{ActionRemoveAsk, "remove the focused download"},
	{ActionAutoClear, "clear completed and removed downloads"},
	{ActionFollowRow, "keep focus on the current download across refreshes"},
	{ActionQuit, "quit"},
}

func (d *Dashboard) paintHelp() {
	d.printAt("aria2top key bindings", 0, 0, Style(PaletteBrightHelp))

	keyWidth := 0
	for _, e := range helpEntries {
		if w := len(e.action.KeyNames()); w > keyWidth {
			keyWidth = w
		}
	}

	y := 2
	for _, e := range helpEntries {
		d.printAt(padRight(e.action.KeyNames(), keyWidth), 2, y, Style(PaletteBrightHelp))
		d.printAt(e.desc, 2+keyWidth+2, y, Style(PaletteDefault))
		y++
	}

	y++
	switch {
	case d.offline:
		d.printAt("daemon unreachable", 0, y, Style(PaletteStatusError))
	case d.hasStat:
		line := fmt.Sprintf("down %s  up %s  active %d  waiting %d  stopped %d",
			formatSpeed(d.stat.DownloadSpeed), formatSpeed(d.stat.UploadSpeed),
			d.stat.NumActive, d.stat.NumWaiting, d.stat.NumStopped)
		d.printAt(line, 0, y, Style(PaletteDefault))
	}

	d.printAt("Press any key to return.", 0, y+2, Style(PaletteDefault))
}

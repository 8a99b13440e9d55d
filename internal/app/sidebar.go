// Sidebar: region list, pain logging controls and the diary history.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/internal/session"
	"github.com/painscape/painscape/pkg/region"
)

// renderSidebar draws the left panel contents.
func (a *App) renderSidebar() {
	a.renderRegionList()
	imgui.Separator()
	a.renderLogControls()
	imgui.Separator()
	a.renderDiary()
}

// renderRegionList shows every clickable region with its selection state.
// Clicking a row toggles it, mirroring a click on the head itself.
func (a *App) renderRegionList() {
	imgui.Text("Regions")
	imgui.Spacing()

	for _, r := range region.Regions() {
		selected := a.isSelected(r.Name)
		label := displayName(r.Name)
		if imgui.SelectableBoolV(label, selected, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			a.toggle(r.Name)
		}
		if imgui.IsItemHovered() {
			imgui.SetTooltip(r.Description)
		}
		imgui.SameLine()
		if imgui.Button("Focus##" + string(r.Name)) {
			a.camera.FocusOn(r.Facing, focusDuration)
		}
	}

	imgui.Spacing()
	if imgui.Button("Clear Selection") {
		a.selected = a.selected[:0]
	}
}

// renderLogControls shows the intensity slider and the log action.
func (a *App) renderLogControls() {
	imgui.Text("Log Pain")
	imgui.Spacing()

	imgui.SetNextItemWidth(-1)
	imgui.SliderFloatV("##intensity", &a.logIntensity, 0, region.IntensityMax, "Intensity: %.1f", imgui.SliderFlagsNone)

	imgui.SetNextItemWidth(-1)
	imgui.InputTextWithHint("##note", "Note (optional)", &a.logNote, 0, nil)

	canLog := a.diary != nil && len(a.selected) > 0
	if !canLog {
		imgui.TextDisabled("Select regions on the head to log")
		return
	}

	if imgui.ButtonV(fmt.Sprintf("Log %d region(s)", len(a.selected)), imgui.NewVec2(-1, 0)) {
		now := time.Now()
		for _, name := range a.selected {
			entry := session.Entry{
				Date:      now,
				Region:    name,
				Intensity: a.logIntensity,
				Note:      a.logNote,
			}
			if err := a.diary.Add(entry); err != nil {
				logger.Warn("failed to log pain entry", zap.String("region", string(name)), zap.Error(err))
				a.statusMsg = "Failed to save entry: " + err.Error()
				return
			}
		}
		a.statusMsg = fmt.Sprintf("Logged %d entries", len(a.selected))
		a.logNote = ""
		if a.heatmap {
			a.intensities = a.diary.WeeklySummary(now)
		}
	}
}

// renderDiary lists the saved entries, newest first, with per-entry delete.
func (a *App) renderDiary() {
	imgui.Text("History")
	imgui.Spacing()

	if a.diary == nil {
		imgui.TextDisabled("Diary unavailable")
		return
	}
	entries := a.diary.Entries()
	if len(entries) == 0 {
		imgui.TextDisabled("No entries yet")
		return
	}

	deleteIdx := -1
	if imgui.BeginChildStrV("##history", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, 0) {
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if imgui.Button(fmt.Sprintf("x##entry%d", i)) {
				deleteIdx = i
			}
			imgui.SameLine()
			imgui.Text(fmt.Sprintf("%s  %s  %.1f",
				e.Date.Format("Jan 2 15:04"), displayName(e.Region), e.Intensity))
			if e.Note != "" && imgui.IsItemHovered() {
				imgui.SetTooltip(e.Note)
			}
		}
	}
	imgui.EndChild()

	if deleteIdx >= 0 {
		if err := a.diary.Delete(deleteIdx); err != nil {
			logger.Warn("failed to delete pain entry", zap.Error(err))
		} else if a.heatmap {
			a.intensities = a.diary.WeeklySummary(time.Now())
		}
	}
}

func (a *App) isSelected(name region.Name) bool {
	for _, n := range a.selected {
		if n == name {
			return true
		}
	}
	return false
}

// displayName turns a region name like "temporal-left" into "Temporal Left".
func displayName(name region.Name) string {
	words := strings.Split(string(name), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

package ui

import (
	"image"
	"math"
	"slices"
	"strconv"

	"lifecanvas/internal/core"
	"lifecanvas/internal/session"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutSpacing = 18
	controlsTop    = panelPadding + headerBaseline + 14

	toolbarHeight = 28
	toolbarMargin = 8
	toolbarGap    = 6
	glyphWidth    = 7
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// intTarget returns the value one step away from current in direction and
// whether it differs from current after clamping.
func intTarget(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.Min < ctrl.Max {
		target = min(max(target, int(math.Round(ctrl.Min))), int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// floatTarget is intTarget for floating point controls.
func floatTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.Min < ctrl.Max {
		target = min(max(target, ctrl.Min), ctrl.Max)
	}
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1 || step != math.Round(step*10)/10:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// refreshControls copies snapshot values into the control states.
func refreshControls(states []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// layoutControls places the -/+ buttons of each control inside a panel of
// the given width.
func layoutControls(states []hudControlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// toolbarRects lays buttons out left to right along the top edge, each wide
// enough for its label.
func toolbarRects(labels []string) []image.Rectangle {
	rects := make([]image.Rectangle, len(labels))
	x := toolbarMargin
	for i, label := range labels {
		w := len(label)*glyphWidth + 2*panelPadding
		rects[i] = image.Rect(x, toolbarMargin, x+w, toolbarMargin+toolbarHeight)
		x += w + toolbarGap
	}
	return rects
}

// toolbarLayout caches button rectangles for the current action list.
type toolbarLayout struct {
	actions []session.Action
	rects   []image.Rectangle
}

// update recomputes the rectangles when actions differ from the cached list
// and reports whether it did.
func (l *toolbarLayout) update(actions []session.Action) bool {
	if l.rects != nil && slices.Equal(actions, l.actions) {
		return false
	}
	l.actions = slices.Clone(actions)
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}
	l.rects = toolbarRects(labels)
	return true
}

// hit returns the action whose button contains (x, y).
func (l *toolbarLayout) hit(x, y int) (session.Action, bool) {
	for i, rect := range l.rects {
		if pointInRect(x, y, rect) {
			return l.actions[i], true
		}
	}
	return 0, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

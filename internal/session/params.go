package session

import (
	"fmt"
	"math"

	"lifecanvas/internal/core"
	"lifecanvas/internal/view"
)

const (
	paramFPS   = "fps"
	paramScale = "scale"
)

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	px, py := s.view.Position()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "View",
				Params: []core.Parameter{
					core.TextParam("position", "Position", fmt.Sprintf("%d, %d", px, py)),
					core.FloatParam(paramScale, "Scale", s.view.Scale()),
					core.TextParam("zoom", "Zoom", fmt.Sprintf("%d%%", int(math.Round(s.view.Scale()*100)))),
				},
			},
			{
				Name: "Simulation",
				Params: []core.Parameter{
					core.IntParam(paramFPS, "Speed", s.clock.FPS()),
					core.IntParam("generation", "Generation", s.grid.Generation()),
					core.IntParam("population", "Alive", s.grid.Population()),
					core.TextParam("mode", "Mode", s.mode.String()),
				},
			},
		},
	}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramScale, Label: "Scale", Type: core.ParamTypeFloat, Step: view.ScaleStep, Min: view.MinScale, Max: view.MaxScale},
		{Key: paramFPS, Label: "Speed", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: core.MaxFPS},
	}
}

// SetIntParameter updates an integer control.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != paramFPS {
		return false
	}
	s.SetFPS(value)
	return true
}

// SetFloatParameter updates a floating point control.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != paramScale || math.IsNaN(value) {
		return false
	}
	s.SetScale(value)
	return true
}

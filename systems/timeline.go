package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
)

// tempo selects the damp multiplier of a phase.
type tempo int

const (
	tempoMedium tempo = iota
	tempoSlow
	tempoFast
)

func (t tempo) rate() float64 {
	switch t {
	case tempoSlow:
		return cfg.Pose.BaseRate * cfg.Pose.SlowMul
	case tempoFast:
		return cfg.Pose.BaseRate * cfg.Pose.FastMul
	}
	return cfg.Pose.BaseRate * cfg.Pose.MediumMul
}

type jointPose struct {
	id  components.JointID
	rot mgl64.Vec3
}

// phase is a constant key pose held for one span of an action timer.
type phase struct {
	tempo   tempo
	joints  []jointPose
	hips    mgl64.Vec3
	setHips bool
	feet    bool // clear foot roll during this phase
}

// timeline is a table of phases; the thresholds come from config so the
// timing can be tuned without touching the poses.
type timeline struct {
	phases []phase
}

// phaseIndex returns the phase holding t. Each phase includes its lower bound
// and excludes its upper one; past the last threshold the final phase holds
// for as long as the action lasts.
func phaseIndex(thresholds []float64, t float64) int {
	for i, th := range thresholds {
		if t < th {
			return i
		}
	}
	return len(thresholds)
}

// apply records the phase pose for timer t and returns the phase index.
func (tl *timeline) apply(p *Pose, thresholds []float64, t float64) int {
	idx := phaseIndex(thresholds, t)
	if idx >= len(tl.phases) {
		idx = len(tl.phases) - 1
	}
	ph := &tl.phases[idx]
	rate := ph.tempo.rate()
	for _, jp := range ph.joints {
		p.Set(jp.id, jp.rot, rate)
	}
	if ph.setHips {
		p.SetHips(ph.hips, rate)
	}
	if ph.feet {
		p.ResetFeet(rate)
	}
	return idx
}

// phaseProgress returns how far t is through phase idx, in [0,1].
func phaseProgress(thresholds []float64, idx int, t float64) float64 {
	start := 0.0
	if idx > 0 && idx-1 < len(thresholds) {
		start = thresholds[idx-1]
	}
	if idx >= len(thresholds) {
		return 1
	}
	span := thresholds[idx] - start
	if span <= 0 {
		return 1
	}
	p := (t - start) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

package snackbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear animation progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return clamp01(t) }

// Decelerate starts fast and slows into the end (ease-out).
func Decelerate(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Accelerate starts slow and speeds up toward the end (ease-in).
func Accelerate(t float64) float64 {
	t = clamp01(t)
	return t * t
}

const (
	springSamplesFPS = 120
	springMaxSteps   = 4096
	springEpsilon    = 1e-3
)

// Spring builds a curve from a damped harmonica spring travelling 0→1. The
// spring is simulated until it settles and the trajectory is stretched over
// [0,1], so the animation still honours its configured duration. Underdamped
// springs overshoot past 1 before settling.
func Spring(frequency, damping float64) Easing {
	s := harmonica.NewSpring(harmonica.FPS(springSamplesFPS), frequency, damping)
	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < springMaxSteps; i++ {
		pos, vel = s.Update(pos, vel, 1.0)
		samples = append(samples, pos)
		if math.Abs(1-pos) < springEpsilon && math.Abs(vel) < springEpsilon {
			break
		}
	}
	samples[len(samples)-1] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		f := t * float64(len(samples)-1)
		i := int(f)
		if i >= len(samples)-1 {
			return 1
		}
		frac := f - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// EasingByName resolves the names used in configuration files.
func EasingByName(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return nil, nil
	case "linear":
		return Linear, nil
	case "decelerate", "ease-out":
		return Decelerate, nil
	case "accelerate", "ease-in":
		return Accelerate, nil
	case "spring":
		return Spring(6.0, 0.5), nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

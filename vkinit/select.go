package vkinit

import "github.com/vkngwrapper/core/v3/core1_0"

// SelectOptions adjusts physical-device selection. The zero value matches
// the defaults used by the revisions in this repository.
type SelectOptions struct {
	// RequireGeometryShader rejects devices without geometry-shader support.
	// Off by default; earlier revisions of the tutorial gated on it.
	RequireGeometryShader bool
}

// Score rates a device for selection. Discrete GPUs get a large head start
// and the maximum 2-D image dimension rewards capacity beyond that.
func Score(p DeviceProfile) int {
	score := p.MaxImageDimension2D
	if p.DeviceType == core1_0.PhysicalDeviceTypeDiscreteGPU {
		score += 1000
	}
	return score
}

// Suitable reports whether the device can drive presentation at all: both
// queue families found, every required device extension advertised, and at
// least one surface format and one present mode for the surface.
func Suitable(p DeviceProfile, opts SelectOptions) bool {
	if opts.RequireGeometryShader && !p.GeometryShader {
		return false
	}
	if !p.QueueFamilies.IsComplete() {
		return false
	}
	if len(p.MissingExtensions) > 0 {
		return false
	}
	return p.SurfaceFormatCount > 0 && p.PresentModeCount > 0
}

// Pick folds over the candidate profiles and returns the index of the best
// device. Only suitable candidates with a positive score qualify; among equal
// scores the earliest candidate wins, so the choice is stable in enumeration
// order. ErrNoSuitableGPU is returned when no candidate qualifies.
func Pick(profiles []DeviceProfile, opts SelectOptions) (int, error) {
	best := -1
	bestScore := 0

	for idx, profile := range profiles {
		if !Suitable(profile, opts) {
			continue
		}
		if score := Score(profile); score > bestScore {
			best = idx
			bestScore = score
		}
	}

	if best < 0 {
		return -1, ErrNoSuitableGPU
	}
	return best, nil
}

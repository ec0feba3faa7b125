package vkinit

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// presentableProfile builds a device that passes every suitability check.
func presentableProfile(deviceType core1_0.PhysicalDeviceType, maxImageDimension2D int) DeviceProfile {
	return DeviceProfile{
		DeviceType:          deviceType,
		MaxImageDimension2D: maxImageDimension2D,
		QueueFamilies: QueueFamilyIndices{
			GraphicsFamily: intPtr(0),
			PresentFamily:  intPtr(0),
		},
		SurfaceFormatCount: 1,
		PresentModeCount:   1,
	}
}

func TestScore(t *testing.T) {
	discrete := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 16384)
	if got := Score(discrete); got != 17384 {
		t.Errorf("discrete score = %d, want 17384", got)
	}

	integrated := presentableProfile(core1_0.PhysicalDeviceTypeIntegratedGPU, 8192)
	if got := Score(integrated); got != 8192 {
		t.Errorf("integrated score = %d, want 8192", got)
	}
}

func TestPickPrefersDiscreteRegardlessOfOrder(t *testing.T) {
	discrete := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 4096)
	integrated := presentableProfile(core1_0.PhysicalDeviceTypeIntegratedGPU, 4096)

	idx, err := Pick([]DeviceProfile{integrated, discrete}, SelectOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 {
		t.Errorf("integrated first: picked %d, want 1", idx)
	}

	idx, err = Pick([]DeviceProfile{discrete, integrated}, SelectOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 0 {
		t.Errorf("discrete first: picked %d, want 0", idx)
	}
}

func TestPickBreaksTiesByEnumerationOrder(t *testing.T) {
	first := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 8192)
	second := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 8192)

	idx, err := Pick([]DeviceProfile{first, second}, SelectOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 0 {
		t.Errorf("picked %d, want the earliest of equal scores (0)", idx)
	}
}

func TestPickSkipsUnsuitableTopScorer(t *testing.T) {
	// The discrete device outscores the integrated one but cannot present.
	discrete := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 16384)
	discrete.MissingExtensions = []string{"VK_KHR_swapchain"}
	integrated := presentableProfile(core1_0.PhysicalDeviceTypeIntegratedGPU, 4096)

	idx, err := Pick([]DeviceProfile{discrete, integrated}, SelectOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 {
		t.Errorf("picked %d, want the suitable integrated device (1)", idx)
	}
}

func TestPickRejectsZeroScore(t *testing.T) {
	// Suitable, but nothing to score on.
	flat := presentableProfile(core1_0.PhysicalDeviceTypeIntegratedGPU, 0)

	_, err := Pick([]DeviceProfile{flat}, SelectOptions{})
	if !errors.Is(err, ErrNoSuitableGPU) {
		t.Errorf("expected ErrNoSuitableGPU, got %v", err)
	}
}

func TestPickNoCandidates(t *testing.T) {
	_, err := Pick(nil, SelectOptions{})
	if !errors.Is(err, ErrNoSuitableGPU) {
		t.Errorf("expected ErrNoSuitableGPU, got %v", err)
	}
}

func TestSuitable(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*DeviceProfile)
		opts     SelectOptions
		suitable bool
	}{
		{"fully capable", func(p *DeviceProfile) {}, SelectOptions{}, true},
		{"incomplete queue families", func(p *DeviceProfile) {
			p.QueueFamilies.PresentFamily = nil
		}, SelectOptions{}, false},
		{"missing swapchain extension", func(p *DeviceProfile) {
			p.MissingExtensions = []string{"VK_KHR_swapchain"}
		}, SelectOptions{}, false},
		{"no surface formats", func(p *DeviceProfile) {
			p.SurfaceFormatCount = 0
		}, SelectOptions{}, false},
		{"no present modes", func(p *DeviceProfile) {
			p.PresentModeCount = 0
		}, SelectOptions{}, false},
		{"geometry gate off ignores feature", func(p *DeviceProfile) {
			p.GeometryShader = false
		}, SelectOptions{}, true},
		{"geometry gate on rejects", func(p *DeviceProfile) {
			p.GeometryShader = false
		}, SelectOptions{RequireGeometryShader: true}, false},
		{"geometry gate on accepts", func(p *DeviceProfile) {
			p.GeometryShader = true
		}, SelectOptions{RequireGeometryShader: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := presentableProfile(core1_0.PhysicalDeviceTypeDiscreteGPU, 4096)
			tt.mutate(&profile)
			if got := Suitable(profile, tt.opts); got != tt.suitable {
				t.Errorf("Suitable() = %v, want %v", got, tt.suitable)
			}
		})
	}
}

func TestFailMatchesKind(t *testing.T) {
	underlying := errors.New("VK_ERROR_OUT_OF_HOST_MEMORY")
	err := Fail(ErrSwapchainCreate, underlying)

	if !errors.Is(err, ErrSwapchainCreate) {
		t.Error("marked error does not match its kind")
	}
	if !errors.Is(Fail(ErrNoVulkanGPU, nil), ErrNoVulkanGPU) {
		t.Error("bare kind does not match itself")
	}
}

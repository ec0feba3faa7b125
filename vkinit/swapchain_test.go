package vkinit

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSurfaceFormatPrefersBGRA8SRGB(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	other := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	got := ChooseSurfaceFormat([]khr_surface.SurfaceFormat{other, preferred})
	if got != preferred {
		t.Errorf("got %+v, want the BGRA8 sRGB format whenever advertised", got)
	}
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	first := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	second := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	got := ChooseSurfaceFormat([]khr_surface.SurfaceFormat{first, second})
	if got != first {
		t.Errorf("got %+v, want the first advertised format", got)
	}
}

func TestChoosePresentMode(t *testing.T) {
	withMailbox := []khr_surface.PresentMode{
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeMailbox,
		khr_surface.PresentModeImmediate,
	}
	if got := ChoosePresentMode(withMailbox); got != khr_surface.PresentModeMailbox {
		t.Errorf("got %v, want mailbox when advertised", got)
	}

	withoutMailbox := []khr_surface.PresentMode{
		khr_surface.PresentModeImmediate,
		khr_surface.PresentModeFIFO,
	}
	if got := ChoosePresentMode(withoutMailbox); got != khr_surface.PresentModeFIFO {
		t.Errorf("got %v, want the FIFO fallback", got)
	}
}

func TestChooseExtentFixedBySurface(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: 800, Height: 600},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}

	got := ChooseExtent(capabilities, 1024, 768)
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("got %dx%d, want the surface's fixed 800x600", got.Width, got.Height)
	}
}

func TestChooseExtentClampsDrawableSize(t *testing.T) {
	// -1 width marks the surface as window-driven.
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 640, Height: 480},
		MaxImageExtent: core1_0.Extent2D{Width: 1920, Height: 1080},
	}

	tests := []struct {
		name                 string
		drawableW, drawableH int
		wantW, wantH         int
	}{
		{"within range", 1024, 768, 1024, 768},
		{"below minimum", 320, 200, 640, 480},
		{"above maximum", 3840, 2160, 1920, 1080},
		{"mixed axes", 320, 2160, 640, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseExtent(capabilities, tt.drawableW, tt.drawableH)
			if got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", got.Width, got.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestChooseImageCount(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     int
	}{
		{"one above minimum", 2, 8, 3},
		{"clamped by maximum", 3, 3, 3},
		{"unbounded maximum", 2, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capabilities := &khr_surface.SurfaceCapabilities{
				MinImageCount: tt.min,
				MaxImageCount: tt.max,
			}
			if got := ChooseImageCount(capabilities); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSharingPolicy(t *testing.T) {
	shared := QueueFamilyIndices{GraphicsFamily: intPtr(0), PresentFamily: intPtr(0)}
	mode, families := SharingPolicy(shared)
	if mode != core1_0.SharingModeExclusive {
		t.Errorf("shared family: mode = %v, want exclusive", mode)
	}
	if len(families) != 0 {
		t.Errorf("shared family: families = %v, want none", families)
	}

	split := QueueFamilyIndices{GraphicsFamily: intPtr(0), PresentFamily: intPtr(2)}
	mode, families = SharingPolicy(split)
	if mode != core1_0.SharingModeConcurrent {
		t.Errorf("split families: mode = %v, want concurrent", mode)
	}
	if len(families) != 2 || families[0] != 0 || families[1] != 2 {
		t.Errorf("split families: families = %v, want [0 2]", families)
	}
}

package vkinit

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// ChooseSurfaceFormat prefers 8-bit BGRA sRGB with the sRGB non-linear color
// space and falls back to the first advertised format.
func ChooseSurfaceFormat(available []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range available {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return available[0]
}

// ChoosePresentMode prefers mailbox and falls back to FIFO, the only mode
// guaranteed to be available.
func ChoosePresentMode(available []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range available {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}

	return khr_surface.PresentModeFIFO
}

// ChooseExtent uses the surface's current extent when the surface reports a
// fixed one, and otherwise clamps the drawable pixel size into the supported
// range per axis.
func ChooseExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	extent := core1_0.Extent2D{Width: drawableWidth, Height: drawableHeight}
	if extent.Width < capabilities.MinImageExtent.Width {
		extent.Width = capabilities.MinImageExtent.Width
	}
	if extent.Width > capabilities.MaxImageExtent.Width {
		extent.Width = capabilities.MaxImageExtent.Width
	}
	if extent.Height < capabilities.MinImageExtent.Height {
		extent.Height = capabilities.MinImageExtent.Height
	}
	if extent.Height > capabilities.MaxImageExtent.Height {
		extent.Height = capabilities.MaxImageExtent.Height
	}

	return extent
}

// ChooseImageCount asks for one image more than the driver minimum, so
// acquisition never has to wait on the image currently being presented. A
// non-zero maximum clamps the request; zero means unbounded.
func ChooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	count := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && count > capabilities.MaxImageCount {
		count = capabilities.MaxImageCount
	}
	return count
}

// SharingPolicy returns concurrent sharing with both family indices listed
// when graphics and present live on different families, and exclusive with
// none otherwise. Exclusive is cheaper; concurrent avoids explicit ownership
// transfers between the two families.
func SharingPolicy(indices QueueFamilyIndices) (core1_0.SharingMode, []int) {
	if *indices.GraphicsFamily != *indices.PresentFamily {
		return core1_0.SharingModeConcurrent, []int{*indices.GraphicsFamily, *indices.PresentFamily}
	}

	return core1_0.SharingModeExclusive, nil
}

package main

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vulkanotes/bringup/vkinit"
)

func (app *TriangleApp) createSwapchain() error {
	app.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(app.deviceDriver)

	// Capabilities may have moved since selection sampled them, so ask again.
	support, err := app.querySwapchainSupport(app.physicalDevice)
	if err != nil {
		return vkinit.Fail(vkinit.ErrSwapchainCreate, err)
	}

	surfaceFormat := vkinit.ChooseSurfaceFormat(support.Formats)
	presentMode := vkinit.ChoosePresentMode(support.PresentModes)

	drawableWidth, drawableHeight := app.window.VulkanGetDrawableSize()
	extent := vkinit.ChooseExtent(support.Capabilities, int(drawableWidth), int(drawableHeight))

	indices, err := app.findQueueFamilies(app.physicalDevice)
	if err != nil {
		return vkinit.Fail(vkinit.ErrSwapchainCreate, err)
	}
	sharingMode, queueFamilyIndices := vkinit.SharingPolicy(indices)

	swapchain, _, err := app.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: app.surface,

		MinImageCount:    vkinit.ChooseImageCount(support.Capabilities),
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   support.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return vkinit.Fail(vkinit.ErrSwapchainCreate, err)
	}
	app.swapchain = swapchain
	app.swapchainImageFormat = surfaceFormat.Format
	app.swapchainExtent = extent
	app.journal.Push(func() { app.swapchainExtension.DestroySwapchain(app.swapchain, nil) })

	// The images belong to the swap chain; they are enumerated, never
	// destroyed by us.
	app.swapchainImages, _, err = app.swapchainExtension.GetSwapchainImages(app.swapchain)
	if err != nil {
		return vkinit.Fail(vkinit.ErrSwapchainCreate, err)
	}

	return nil
}

func (app *TriangleApp) createImageViews() error {
	for _, image := range app.swapchainImages {
		view, _, err := app.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   app.swapchainImageFormat,
			Components: core1_0.ComponentMapping{
				R: core1_0.ComponentSwizzleIdentity,
				G: core1_0.ComponentSwizzleIdentity,
				B: core1_0.ComponentSwizzleIdentity,
				A: core1_0.ComponentSwizzleIdentity,
			},
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			// Views created so far stay on the journal and are released
			// with everything else.
			return vkinit.Fail(vkinit.ErrImageViewCreate, err)
		}

		app.journal.Push(func() { app.deviceDriver.DestroyImageView(view, nil) })
		app.swapchainImageViews = append(app.swapchainImageViews, view)
	}

	return nil
}

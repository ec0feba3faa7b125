package main

import (
	"log"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vulkanotes/bringup/vkinit"
)

var deviceExtensions = []string{khr_swapchain.ExtensionName}

type SwapchainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

func (app *TriangleApp) pickPhysicalDevice() error {
	physicalDevices, _, err := app.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return vkinit.Fail(vkinit.ErrNoVulkanGPU, err)
	}
	if len(physicalDevices) == 0 {
		return vkinit.ErrNoVulkanGPU
	}

	profiles := make([]vkinit.DeviceProfile, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		profile, err := app.deviceProfile(device)
		if err != nil {
			// A device we cannot query is a device we cannot use; the zero
			// profile never passes suitability.
			log.Printf("skipping device: %v", err)
			profile = vkinit.DeviceProfile{}
		}
		profiles = append(profiles, profile)
	}

	best, err := vkinit.Pick(profiles, vkinit.SelectOptions{})
	if err != nil {
		return err
	}

	app.physicalDevice = physicalDevices[best]
	log.Printf("selected %s (score %d, pipeline cache %s)",
		profiles[best].Name, vkinit.Score(profiles[best]), profiles[best].PipelineCacheUUID)

	return nil
}

// deviceProfile caches everything selection needs from one device, so the
// actual choice runs without further driver calls.
func (app *TriangleApp) deviceProfile(device core1_0.PhysicalDevice) (vkinit.DeviceProfile, error) {
	properties, err := app.instanceDriver.GetPhysicalDeviceProperties(device)
	if err != nil {
		return vkinit.DeviceProfile{}, err
	}
	features := app.instanceDriver.GetPhysicalDeviceFeatures(device)

	profile := vkinit.DeviceProfile{
		Name:                properties.DriverName,
		DeviceType:          properties.DriverType,
		PipelineCacheUUID:   properties.PipelineCacheUUID,
		MaxImageDimension2D: properties.Limits.MaxImageDimension2D,
		GeometryShader:      features.GeometryShader,
	}

	profile.QueueFamilies, err = app.findQueueFamilies(device)
	if err != nil {
		return vkinit.DeviceProfile{}, err
	}

	extensions, _, err := app.instanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return vkinit.DeviceProfile{}, err
	}
	for _, required := range deviceExtensions {
		_, hasExtension := extensions[required]
		if !hasExtension {
			profile.MissingExtensions = append(profile.MissingExtensions, required)
		}
	}

	// Swap-chain adequacy is only meaningful once the extension is there.
	if len(profile.MissingExtensions) == 0 {
		support, err := app.querySwapchainSupport(device)
		if err != nil {
			return vkinit.DeviceProfile{}, err
		}
		profile.SurfaceFormatCount = len(support.Formats)
		profile.PresentModeCount = len(support.PresentModes)
	}

	return profile, nil
}

func (app *TriangleApp) findQueueFamilies(device core1_0.PhysicalDevice) (vkinit.QueueFamilyIndices, error) {
	indices := vkinit.QueueFamilyIndices{}
	queueFamilies := app.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if queueFamily.QueueFlags&core1_0.QueueGraphics != 0 {
			index := queueFamilyIdx
			indices.GraphicsFamily = &index
		}

		supported, _, err := app.surfaceExtension.GetPhysicalDeviceSurfaceSupport(app.surface, device, queueFamilyIdx)
		if err != nil {
			return indices, err
		}
		if supported {
			index := queueFamilyIdx
			indices.PresentFamily = &index
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}

func (app *TriangleApp) querySwapchainSupport(device core1_0.PhysicalDevice) (SwapchainSupportDetails, error) {
	var details SwapchainSupportDetails
	var err error

	details.Capabilities, _, err = app.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(app.surface, device)
	if err != nil {
		return details, err
	}

	details.Formats, _, err = app.surfaceExtension.GetPhysicalDeviceSurfaceFormats(app.surface, device)
	if err != nil {
		return details, err
	}

	details.PresentModes, _, err = app.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(app.surface, device)
	return details, err
}

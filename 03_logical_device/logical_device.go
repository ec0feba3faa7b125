package main

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"

	"github.com/vulkanotes/bringup/vkinit"
)

func (app *TriangleApp) createLogicalDevice() error {
	indices, err := app.findQueueFamilies(app.physicalDevice)
	if err != nil {
		return vkinit.Fail(vkinit.ErrDeviceCreate, err)
	}

	var queueOptions []core1_0.DeviceQueueCreateInfo
	for _, family := range indices.Unique() {
		queueOptions = append(queueOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	extensionNames := append([]string{}, deviceExtensions...)

	// The portability subset must be enabled whenever the implementation
	// advertises it, which covers drivers behind the portability layer on
	// mobile and mac.
	extensions, _, err := app.instanceDriver.EnumerateDeviceExtensionProperties(app.physicalDevice)
	if err != nil {
		return vkinit.Fail(vkinit.ErrDeviceCreate, err)
	}
	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	app.deviceDriver, _, err = app.instanceDriver.CreateDevice(app.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return vkinit.Fail(vkinit.ErrDeviceCreate, err)
	}
	app.journal.Push(func() { app.deviceDriver.DestroyDevice(nil) })

	// When the families coincide these two handles are the same queue.
	app.graphicsQueue = app.deviceDriver.GetQueue(*indices.GraphicsFamily, 0)
	app.presentQueue = app.deviceDriver.GetQueue(*indices.PresentFamily, 0)

	return nil
}

package main

import (
	"log"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vulkanotes/bringup/vkinit"
)

type TriangleApp struct {
	journal vkinit.Journal
	window  *sdl.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	physicalDevice core1_0.PhysicalDevice

	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension   khr_swapchain.ExtensionDriver
	swapchain            khr_swapchain.Swapchain
	swapchainImages      []core1_0.Image
	swapchainImageFormat core1_0.Format
	swapchainExtent      core1_0.Extent2D
	swapchainImageViews  []core1_0.ImageView
}

// PresentationTargets is the frozen handoff a future pipeline builder
// consumes: the chosen format, the final extent and one view per swap-chain
// image.
type PresentationTargets struct {
	Format core1_0.Format
	Extent core1_0.Extent2D
	Views  []core1_0.ImageView
}

func (app *TriangleApp) presentationTargets() PresentationTargets {
	return PresentationTargets{
		Format: app.swapchainImageFormat,
		Extent: app.swapchainExtent,
		Views:  app.swapchainImageViews,
	}
}

func (app *TriangleApp) Run() error {
	defer app.journal.Unwind()

	start := hrtime.Now()
	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	targets := app.presentationTargets()
	log.Printf("swap chain ready in %s: %d images, format %s, %dx%d",
		hrtime.Since(start), len(targets.Views), targets.Format, targets.Extent.Width, targets.Extent.Height)

	app.mainLoop()
	return nil
}

func (app *TriangleApp) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return vkinit.Fail(vkinit.ErrWindowInit, err)
	}
	app.journal.Push(sdl.Quit)

	window, err := sdl.CreateWindow("Triangle", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 800, 600, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return vkinit.Fail(vkinit.ErrWindowInit, err)
	}
	app.window = window
	app.journal.Push(func() { _ = window.Destroy() })

	app.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return vkinit.Fail(vkinit.ErrWindowInit, err)
	}

	return nil
}

func (app *TriangleApp) initVulkan() error {
	err := app.createInstance()
	if err != nil {
		return err
	}

	err = app.setupDebugMessenger()
	if err != nil {
		return err
	}

	err = app.createSurface()
	if err != nil {
		return err
	}

	err = app.pickPhysicalDevice()
	if err != nil {
		return err
	}

	err = app.createLogicalDevice()
	if err != nil {
		return err
	}

	err = app.createSwapchain()
	if err != nil {
		return err
	}

	return app.createImageViews()
}

func (app *TriangleApp) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    "Triangle",
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	available, _, err := app.globalDriver.AvailableExtensions()
	if err != nil {
		return vkinit.Fail(vkinit.ErrInstanceCreate, err)
	}

	for _, ext := range app.window.VulkanGetInstanceExtensions() {
		_, hasExt := available[ext]
		if !hasExt {
			return vkinit.Fail(vkinit.ErrInstanceCreate, errors.Newf("missing required instance extension %s", ext))
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	// Mandatory since Vulkan SDK 1.3.216 for drivers that sit behind the
	// portability layer on mobile and mac.
	instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
	instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability

	if vkinit.EnableValidationLayers {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)

		layers, _, err := app.globalDriver.AvailableLayers()
		if err != nil {
			return vkinit.Fail(vkinit.ErrInstanceCreate, err)
		}
		for _, layer := range vkinit.ValidationLayers {
			_, hasLayer := layers[layer]
			if !hasLayer {
				return vkinit.Fail(vkinit.ErrValidationUnavailable, errors.Newf("layer %s not present - install the LunarG Vulkan SDK", layer))
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		// Chain the messenger create info so instance creation and
		// destruction are themselves covered by validation.
		instanceOptions.Next = debugMessengerOptions()
	}

	app.instanceDriver, _, err = app.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return vkinit.Fail(vkinit.ErrInstanceCreate, err)
	}
	app.journal.Push(func() { app.instanceDriver.DestroyInstance(nil) })

	return nil
}

func debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityVerbose | ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityError,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logValidation,
	}
}

func logValidation(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("Validation layer: %s", data.Message)
	return false
}

func (app *TriangleApp) setupDebugMessenger() error {
	if !vkinit.EnableValidationLayers {
		return nil
	}

	var err error
	app.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(app.instanceDriver)
	app.debugMessenger, _, err = app.debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerOptions())
	if err != nil {
		return vkinit.Fail(vkinit.ErrDebugMessenger, err)
	}
	app.journal.Push(func() { app.debugDriver.DestroyDebugUtilsMessenger(app.debugMessenger, nil) })

	return nil
}

func (app *TriangleApp) createSurface() error {
	app.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(app.instanceDriver)
	surface, err := vkng_sdl2.CreateSurface(app.instanceDriver.Instance(), app.surfaceExtension, app.window)
	if err != nil {
		return vkinit.Fail(vkinit.ErrSurfaceCreate, err)
	}
	app.surface = surface
	app.journal.Push(func() { app.surfaceExtension.DestroySurface(app.surface, nil) })

	return nil
}

func (app *TriangleApp) mainLoop() {
appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			}
		}
	}
}

func main() {
	runtime.LockOSThread()

	app := &TriangleApp{}
	err := app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

package vkinit

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// DeviceProfile is a driver-free snapshot of one physical device, collected
// once during enumeration. Scoring and suitability run against profiles
// rather than live devices, so selection can be exercised with synthetic
// descriptions and no GPU.
type DeviceProfile struct {
	Name              string
	DeviceType        core1_0.PhysicalDeviceType
	PipelineCacheUUID uuid.UUID

	MaxImageDimension2D int
	GeometryShader      bool

	QueueFamilies QueueFamilyIndices

	// MissingExtensions lists required device extensions the device does not
	// advertise. Empty means the device passes the extension check.
	MissingExtensions []string

	SurfaceFormatCount int
	PresentModeCount   int
}

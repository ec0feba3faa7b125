package vkinit

import "github.com/cockroachdb/errors"

// The bring-up failure kinds. Each stage of initialization marks its errors
// with one of these so callers can match the stage with errors.Is instead of
// inspecting message strings.
var (
	ErrWindowInit            = errors.New("failed to create window")
	ErrValidationUnavailable = errors.New("validation layers requested, but not available")
	ErrInstanceCreate        = errors.New("failed to create instance")
	ErrDebugMessenger        = errors.New("failed to set up debug messenger")
	ErrNoVulkanGPU           = errors.New("failed to find GPUs with Vulkan support")
	ErrNoSuitableGPU         = errors.New("failed to find a suitable GPU")
	ErrSurfaceCreate         = errors.New("failed to create window surface")
	ErrDeviceCreate          = errors.New("failed to create logical device")
	ErrSwapchainCreate       = errors.New("failed to create swap chain")
	ErrImageViewCreate       = errors.New("failed to create image views")
)

// Fail marks err with the given failure kind, keeping the underlying driver
// error and its stack trace. A nil err yields the bare kind.
func Fail(kind error, err error) error {
	if err == nil {
		return kind
	}
	return errors.Mark(err, kind)
}

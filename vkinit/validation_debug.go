//go:build !release

package vkinit

// EnableValidationLayers gates the validation layer and the debug messenger.
// Build with -tags release to turn both off.
const EnableValidationLayers = true

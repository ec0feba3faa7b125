//go:build release

package vkinit

const EnableValidationLayers = false

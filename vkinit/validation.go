package vkinit

// ValidationLayers is the layer set requested when validation is enabled.
var ValidationLayers = []string{"VK_LAYER_KHRONOS_validation"}

package vkinit

// QueueFamilyIndices is the queue-family match for one physical device. Both
// families must be found before a logical device can be created; they may
// refer to the same family.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// Unique returns the deduplicated family index set. One queue-create record
// is emitted per entry, so the single-family and dual-family cases fall out
// of the same path.
func (i QueueFamilyIndices) Unique() []int {
	unique := []int{*i.GraphicsFamily}
	if *i.PresentFamily != unique[0] {
		unique = append(unique, *i.PresentFamily)
	}
	return unique
}

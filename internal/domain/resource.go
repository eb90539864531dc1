package domain

import "fmt"

// ResourceKind distinguishes desks from meeting rooms
type ResourceKind string

const (
	ResourceKindDesk ResourceKind = "desk"
	ResourceKindRoom ResourceKind = "room"
)

// ParseResourceKind converts a raw value into a ResourceKind
func ParseResourceKind(value string) (ResourceKind, error) {
	switch ResourceKind(value) {
	case ResourceKindDesk, ResourceKindRoom:
		return ResourceKind(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidResourceKind, value)
	}
}

// Resource is a bookable desk or room placed on the floorplan
type Resource struct {
	ID   string
	Name string
	Kind ResourceKind
	X    int
	Y    int
}

// IsDesk returns true if the resource is a desk
func (r *Resource) IsDesk() bool {
	return r.Kind == ResourceKindDesk
}

// IsRoom returns true if the resource is a meeting room
func (r *Resource) IsRoom() bool {
	return r.Kind == ResourceKindRoom
}

// InFloorplan returns true if the coordinates lie on the floorplan canvas
func (r *Resource) InFloorplan() bool {
	return r.X >= 0 && r.X <= FloorplanWidth && r.Y >= 0 && r.Y <= FloorplanHeight
}

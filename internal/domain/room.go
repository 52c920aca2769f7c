package domain

import "strings"

// Room is a room directory entry; read-only inside this module
type Room struct {
	ID       string
	Name     string
	Capacity *int
	Features []string
}

// HasFeatures reports whether the room offers every required feature (case-insensitive)
func (r *Room) HasFeatures(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range r.Features {
			if strings.EqualFold(strings.TrimSpace(have), strings.TrimSpace(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RoomRef is what the form supplies: either a pre-resolved id or a display name
type RoomRef struct {
	ID   string
	Name string
}

// IsResolved reports whether the reference already carries an id
func (r RoomRef) IsResolved() bool {
	return strings.TrimSpace(r.ID) != ""
}

// IsEmpty reports whether neither id nor name was supplied
func (r RoomRef) IsEmpty() bool {
	return strings.TrimSpace(r.ID) == "" && strings.TrimSpace(r.Name) == ""
}

// RoomFilters narrows a room search
type RoomFilters struct {
	MinCapacity *int
	Features    []string
}

// NormalizeRoomName trims and case-folds a room name for comparison
func NormalizeRoomName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

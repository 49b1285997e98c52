// Package input turns device key codes into held movement directions.
package input

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is a movement axis direction a key can hold down.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// RawInput is a key state reported by the platform layer.
// Code is a device-neutral identifier ("arrow_up", "w", ...).
type RawInput struct {
	Code string
	Down bool
}

// bindings maps raw codes to directions. Multiple codes may share a direction.
var bindings = map[string]Direction{
	"arrow_up":    DirUp,
	"w":           DirUp,
	"arrow_down":  DirDown,
	"s":           DirDown,
	"arrow_left":  DirLeft,
	"a":           DirLeft,
	"arrow_right": DirRight,
	"d":           DirRight,
}

// MapToDirection applies the bindings to a raw code
func MapToDirection(code string) Direction {
	if dir, ok := bindings[code]; ok {
		return dir
	}
	return DirNone
}

// DirectionName returns a human-friendly name for a direction.
func DirectionName(d Direction) string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// GetBindingsByDirection returns the current bindings grouped by direction.
func GetBindingsByDirection() map[Direction][]string {
	result := make(map[Direction][]string)
	for code, dir := range bindings {
		result[dir] = append(result[dir], code)
	}
	for dir, codes := range result {
		sort.Strings(codes)
		result[dir] = codes
	}
	return result
}

// SetBinding binds code to dir, replacing whatever the code pointed at.
// Arrow keys are reserved and cannot be rebound.
func SetBinding(code string, dir Direction) {
	if code == "" || isArrow(code) {
		return
	}
	if dir == DirNone {
		delete(bindings, code)
		return
	}
	bindings[code] = dir
}

func isArrow(code string) bool {
	return code == "arrow_up" || code == "arrow_down" || code == "arrow_left" || code == "arrow_right"
}

// ParseDirection is the inverse of DirectionName, case-insensitive
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "none":
		return DirNone, true
	}
	return DirNone, false
}

// ParseBindings reads a binding list such as "k=up,j=down,w=none".
// Codes must be single letters a-z; "none" removes a default binding.
func ParseBindings(list string) (map[string]Direction, error) {
	result := make(map[string]Direction)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, name, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q: want code=direction", entry)
		}
		code = strings.ToLower(strings.TrimSpace(code))
		if len(code) != 1 || code[0] < 'a' || code[0] > 'z' {
			return nil, fmt.Errorf("binding %q: key must be a single letter", entry)
		}
		dir, ok := ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown direction %q", entry, name)
		}
		result[code] = dir
	}
	return result, nil
}

// ApplyBindings installs every binding in m through SetBinding
func ApplyBindings(m map[string]Direction) {
	for code, dir := range m {
		SetBinding(code, dir)
	}
}

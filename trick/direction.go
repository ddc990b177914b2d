// Package trick holds the directional trick vocabulary: input
// classification, the bounded direction buffer and the trick catalog.
// It has no dependencies on donburi or the physics world.
package trick

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Direction is one discrete stick direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{
	Left:  "left",
	Right: "right",
	Up:    "up",
	Down:  "down",
}

func (d Direction) String() string {
	if d < Left || d > Down {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection accepts the lower- or mixed-case direction name.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidTrick, s)
}

func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Classify maps stick input to a Direction by its dominant axis. It returns
// false when both axes are inside the deadzone. Ties go to the X axis.
func Classify(input mgl64.Vec2, deadzone float64) (Direction, bool) {
	absX := math.Abs(input.X())
	absY := math.Abs(input.Y())

	if absX < deadzone && absY < deadzone {
		return 0, false
	}

	if absX >= absY {
		if input.X() < 0 {
			return Left, true
		}
		return Right, true
	}

	if input.Y() < 0 {
		return Down, true
	}
	return Up, true
}

package course

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrInvalidCourse is returned for course files the simulation cannot run.
var ErrInvalidCourse = errors.New("invalid course")

// Object group names read from the TMX file.
const (
	GroupGround      = "Ground"
	GroupCheckpoints = "Checkpoints"
	GroupFinish      = "Finish"
	GroupHazards     = "Hazards"
	GroupSpawn       = "Spawn"
)

// Load parses the TMX file at tmxPath within fsys. pixelsPerMeter converts
// object positions and sizes; heights and slopes are already in meters.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, pixelsPerMeter float64) (*Course, error) {
	if pixelsPerMeter <= 0 {
		return nil, fmt.Errorf("%w: pixels per meter must be positive", ErrInvalidCourse)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	px := func(v float64) float64 { return v / pixelsPerMeter }
	rect := func(o *tiled.Object) Rect {
		return Rect{X: px(o.X), Z: px(o.Y), Width: px(o.Width), Depth: px(o.Height)}
	}

	c := &Course{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: px(float64(levelMap.Width * levelMap.TileWidth)),
		Depth: px(float64(levelMap.Height * levelMap.TileHeight)),
	}
	hasSpawn := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				c.Ground = append(c.Ground, Ground{
					Rect:   rect(o),
					Height: o.Properties.GetFloat("height"),
					SlopeX: o.Properties.GetFloat("slopeX"),
					SlopeZ: o.Properties.GetFloat("slopeZ"),
					Layer:  o.Properties.GetString("layer"),
				})
			}
		case GroupCheckpoints:
			for _, o := range og.Objects {
				c.Checkpoints = append(c.Checkpoints, Checkpoint{
					Rect:     rect(o),
					ID:       o.Properties.GetInt("id"),
					Yaw:      o.Properties.GetFloat("yaw"),
					Required: o.Properties.GetBool("required"),
				})
			}
		case GroupFinish:
			for _, o := range og.Objects {
				if c.Finish != nil {
					return nil, fmt.Errorf("%w: %s has more than one finish line", ErrInvalidCourse, tmxPath)
				}
				c.Finish = &Finish{
					Rect: rect(o),
					Yaw:  o.Properties.GetFloat("yaw"),
				}
			}
		case GroupHazards:
			for _, o := range og.Objects {
				name := o.Properties.GetString("kind")
				if name == "" {
					name = o.Name
				}
				c.Hazards = append(c.Hazards, Hazard{
					Rect:    rect(o),
					Name:    name,
					Surface: o.Properties.GetFloat("surface"),
				})
			}
		case GroupSpawn:
			for _, o := range og.Objects {
				c.Spawn = Spawn{
					X:   px(o.X),
					Z:   px(o.Y),
					Yaw: o.Properties.GetFloat("yaw"),
				}
				hasSpawn = true
				break
			}
		}
	}

	if len(c.Ground) == 0 {
		return nil, fmt.Errorf("%w: %s has no %s objects", ErrInvalidCourse, tmxPath, GroupGround)
	}
	if !hasSpawn {
		return nil, fmt.Errorf("%w: %s has no %s object", ErrInvalidCourse, tmxPath, GroupSpawn)
	}

	// Checkpoints in ID order so required IDs read naturally.
	sort.SliceStable(c.Checkpoints, func(i, j int) bool {
		return c.Checkpoints[i].ID < c.Checkpoints[j].ID
	})

	return c, nil
}

// LoadAll loads every .tmx file in dir within fsys, keyed by stem name, plus
// the sorted list of names.
func LoadAll(fsys fs.FS, dir string, pixelsPerMeter float64) (map[string]*Course, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	courses := make(map[string]*Course, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		c, err := Load(fsys, path, pixelsPerMeter)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		courses[c.Name] = c
		names = append(names, c.Name)
	}

	sort.Strings(names)
	return courses, names, nil
}

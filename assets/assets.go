package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/skatedog/config"
	"github.com/automoto/skatedog/course"
)

//go:embed all:courses
var courseFS embed.FS

// DefaultCourse is the course used when none is given on the command line.
const DefaultCourse = "loop"

// LoadCourse loads an embedded course by name.
func LoadCourse(name string) (*course.Course, error) {
	c, err := course.Load(courseFS, "courses/"+name+".tmx", config.Course.PixelsPerMeter)
	if err != nil {
		return nil, fmt.Errorf("embedded course %q: %w", name, err)
	}
	return c, nil
}

// CourseNames lists the embedded courses.
func CourseNames() ([]string, error) {
	_, names, err := course.LoadAll(courseFS, "courses", config.Course.PixelsPerMeter)
	return names, err
}

// ResolveCourse loads a course by embedded name, or from disk when arg is a
// path to a .tmx file.
func ResolveCourse(arg string) (*course.Course, error) {
	if arg == "" {
		arg = DefaultCourse
	}
	if !strings.HasSuffix(arg, ".tmx") {
		return LoadCourse(arg)
	}
	dir, file := filepath.Split(arg)
	if dir == "" {
		dir = "."
	}
	c, err := course.Load(os.DirFS(dir), file, config.Course.PixelsPerMeter)
	if err != nil {
		return nil, fmt.Errorf("course file %s: %w", arg, err)
	}
	return c, nil
}

package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Red
	Green
	Blue
	Yellow
)

// Default is used whenever a color choice cannot be obtained.
const Default = Red

// Playable lists the colors a wild card can be turned into.
var Playable = []Color{Red, Green, Blue, Yellow}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Wild: {
		name:          "wild",
		colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
	},
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if s, ok := palette[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

// Paintf colors the formatted text and tags it with the color name so it
// stays readable on terminals without ANSI support.
func (c Color) Paintf(format string, args ...interface{}) string {
	s, ok := palette[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return s.colorFunction(format, args...) + fmt.Sprintf("(%s)", s.name)
}

// Choosable reports whether c is one of the four colors a wild card may take.
func (c Color) Choosable() bool {
	return c >= Red && c <= Yellow
}

func (c Color) String() string {
	return c.Name()
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, s := range palette {
		if s.name == name {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}

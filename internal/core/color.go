package core

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ansiBase holds the 16 standard terminal colors in xterm's default palette.
var ansiBase = [16]string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00", "#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00", "#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

// cubeLevels are the channel intensities of the 6x6x6 xterm color cube.
var cubeLevels = [6]float64{0, 95, 135, 175, 215, 255}

// ParseColor converts a style color spec into an RGB color.
// Accepted forms are the ones lipgloss understands: "#rrggbb", "#rgb" and
// ANSI palette indices "0" through "255".
func ParseColor(spec string) (colorful.Color, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return colorful.Color{}, false
	}

	if strings.HasPrefix(spec, "#") {
		if len(spec) == 4 {
			spec = "#" + strings.Repeat(spec[1:2], 2) + strings.Repeat(spec[2:3], 2) + strings.Repeat(spec[3:4], 2)
		}
		c, err := colorful.Hex(spec)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	idx, err := strconv.Atoi(spec)
	if err != nil || idx < 0 || idx > 255 {
		return colorful.Color{}, false
	}

	switch {
	case idx < 16:
		c, _ := colorful.Hex(ansiBase[idx])
		return c, true
	case idx < 232:
		idx -= 16
		r, g, b := cubeLevels[idx/36], cubeLevels[(idx/6)%6], cubeLevels[idx%6]
		return colorful.Color{R: r / 255, G: g / 255, B: b / 255}, true
	default:
		level := float64(8+(idx-232)*10) / 255
		return colorful.Color{R: level, G: level, B: level}, true
	}
}

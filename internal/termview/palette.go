package termview

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// colorMode describes how colors are rendered.
type colorMode uint8

const (
	colorOff     colorMode = iota // NO_COLOR or dumb terminal
	colorANSI16                   // basic 16-color
	colorANSI256                  // 256-color
	colorTrue                     // 24-bit truecolor
)

var (
	detectOnce sync.Once
	termColor  colorMode
)

// detectColorMode checks terminal capabilities once.
func detectColorMode() colorMode {
	detectOnce.Do(func() {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			termColor = colorOff
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		ct := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"):
			termColor = colorTrue
		case strings.Contains(term, "256color"):
			termColor = colorANSI256
		case term == "dumb":
			termColor = colorOff
		case term == "" && runtime.GOOS == "windows":
			termColor = colorANSI16
		case term == "":
			termColor = colorOff
		default:
			termColor = colorANSI16
		}
	})
	return termColor
}

type rgb struct{ R, G, B uint8 }

// Channel colors: upper band (left channel) and lower band (right channel).
var (
	upperColor = rgb{R: 41, G: 184, B: 219}
	lowerColor = rgb{R: 214, G: 112, B: 214}
)

// fgColorSeq returns an ANSI foreground color escape for c, or "" when
// colors are disabled.
func fgColorSeq(mode colorMode, c rgb) string {
	switch mode {
	case colorTrue:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case colorANSI256:
		ri := int(c.R) * 5 / 255
		gi := int(c.G) * 5 / 255
		bi := int(c.B) * 5 / 255
		return fmt.Sprintf("\x1b[38;5;%dm", 16+36*ri+6*gi+bi)
	case colorANSI16:
		return ansi16Approx(c)
	default:
		return ""
	}
}

const ansiReset = "\x1b[0m"

// ansi16Approx maps c to the nearest ANSI 16 foreground color.
func ansi16Approx(c rgb) string {
	best := 0
	bestDist := 1<<31 - 1
	for i, p := range ansi16Palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 8 {
		return fmt.Sprintf("\x1b[%dm", 30+best)
	}
	return fmt.Sprintf("\x1b[%dm", 90+best-8)
}

var ansi16Palette = [16]rgb{
	{0, 0, 0},       // black
	{205, 49, 49},   // red
	{13, 188, 121},  // green
	{229, 229, 16},  // yellow
	{36, 114, 200},  // blue
	{188, 63, 188},  // magenta
	{17, 168, 205},  // cyan
	{229, 229, 229}, // white
	{102, 102, 102}, // bright black
	{241, 76, 76},   // bright red
	{35, 209, 139},  // bright green
	{245, 245, 67},  // bright yellow
	{59, 142, 234},  // bright blue
	{214, 112, 214}, // bright magenta
	{41, 184, 219},  // bright cyan
	{255, 255, 255}, // bright white
}

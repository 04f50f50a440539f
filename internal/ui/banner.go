package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
 _   _             _              _ __        __    _
| \ | | __ _ _   _| | ____ _ _ __(_)\ \      / /_ _| | __ _
|  \| |/ _` + "`" + ` | | | | |/ / _` + "`" + ` | '__| | \ \ /\ / / _` + "`" + ` | |/ _` + "`" + ` |
| |\  | (_| | |_| |   < (_| | |  | |  \ V  V / (_| | | (_| |
|_| \_|\__,_|\__,_|_|\_\__,_|_|  |_|   \_/\_/ \__,_|_|\__,_|
`

// ColorizeText fades text between two random colours.
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := len(chars) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, c := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%half), endColor).Sprint(c))
	}
	return b.String()
}

// PrintBanner writes the startup banner unless silence is set.
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}

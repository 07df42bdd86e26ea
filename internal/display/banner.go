package display

import (
	"fmt"
	"io"

	"github.com/backmassage/pairtag/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when p has colors.
func PrintBanner(w io.Writer, p term.Palette) {
	fmt.Fprint(w, p.Magenta)
	fmt.Fprint(w, `             _      _
 _ __   __ _(_)_ __| |_ __ _  __ _
| '_ \ / _`+"`"+` | | '__| __/ _`+"`"+` |/ _`+"`"+` |
| |_) | (_| | | |  | || (_| | (_| |
| .__/ \__,_|_|_|   \__\__,_|\__, |
|_|                          |___/
`)
	fmt.Fprint(w, p.NC)
}

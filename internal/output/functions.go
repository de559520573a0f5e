package output

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/raeve/gameboot/internal/progress"
)

// RenderProgress draws one progress line: the bar, the percentage, the
// ring's dash offset, and the byte counts. With an unknown total only the
// received count is shown.
func RenderProgress(received, total int64, fraction float64, label string) string {
	if total <= 0 || math.IsNaN(fraction) {
		return debugStyle.Render(fmt.Sprintf("%s %s %s", label, StyleSymbols["pending"], humanize.IBytes(uint64(received))))
	}
	width := min(getTerminalWidth()-40, 30)
	bar := ProgressBar(received, total, width)
	return fmt.Sprintf("%s %s %s/%s (offset %.0f)", label, bar,
		humanize.IBytes(uint64(received)), humanize.IBytes(uint64(total)),
		progress.DashOffset(fraction))
}

// ProgressBar creates a progress bar string.
func ProgressBar(current, total int64, width int) string {
	if width <= 0 {
		width = 30
	}
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	percent := float64(current) / float64(total)
	filled := max(0, min(int(percent*float64(width)), width))
	bar := StyleSymbols["bullet"]
	bar += strings.Repeat(StyleSymbols["hline"], filled)
	if filled < width {
		bar += strings.Repeat(" ", width-filled)
	}
	bar += StyleSymbols["bullet"]
	return debugStyle.Render(fmt.Sprintf("%s %.1f%%", bar, percent*100))
}

// PrintLine rewrites the current terminal line, for the splash updates.
func PrintLine(text string) {
	fmt.Printf("\r\033[K%s", text)
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Default fallback width
	}
	return width
}

package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the pergola ASCII art header with a version tagline.
// Callers should skip it when stdout is not a terminal.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Green-to-teal gradient, one color per row
	rows := []struct {
		art string
		hex string
	}{
		{"  _ __   ___ _ __ __ _  ___ | | __ _", "#86efac"},
		{" | '_ \\ / _ \\ '__/ _` |/ _ \\| |/ _` |", "#4ade80"},
		{" | |_) |  __/ | | (_| | (_) | | (_| |", "#34d399"},
		{" | .__/ \\___|_|  \\__, |\\___/|_|\\__,_|", "#10b981"},
		{" | |              __/ |", "#14b8a6"},
		{" |_|             |___/", "#0d9488"},
	}

	fmt.Println()
	for _, row := range rows {
		fmt.Println(termenv.String(row.art).Foreground(p.Color(row.hex)))
	}
	fmt.Println(termenv.String("  agentic trace viewer " + version).Faint())
	fmt.Println()
}

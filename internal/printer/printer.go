// Package printer centralises the CLI's user-facing output: colored status
// lines on stdout and formatted rejection reports on stderr. The validation
// core never prints; everything a user sees goes through here.
package printer

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Printf("✓ %s", msg)
	} else {
		green.Print(msg)
	}
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Printf("⚠️  %s", msg)
	} else {
		yellow.Print(msg)
	}
}

// Field prints an indented "label: value" line, used for scenario summaries
// and registry listings. Labels are cyan so summary blocks scan easily.
func Field(label string, value any) {
	cyan.Printf("  %s: ", label)
	fmt.Printf("%v\n", value)
}

// Rejection prints a scenario rejection to stderr: the failure kind in red,
// the detailed reason, and an optional hint. It returns a plain error
// carrying only the kind, for Cobra to propagate as the exit status.
func Rejection(kind, reason, hint string) error {
	red.Fprintf(os.Stderr, "%s\n\n", kind)
	fmt.Fprintf(os.Stderr, "%s\n", reason)
	if hint != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", hint)
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", kind)
}

// Println prints a plain message (for output that doesn't need coloring)
func Println(a ...any) {
	fmt.Println(a...)
}

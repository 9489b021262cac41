// Package banner renders the startup banner shown on stderr.
package banner

import (
	"fmt"

	"github.com/fatih/color"
)

const logo = `
  _   _  _____  ____
 | \ | || ____||  _ \
 |  \| ||  _|  | |_) |
 | |\  || |___ |  _ <
 |_| \_||_____||_| \_\
`

// Banner returns the colorized logo and version line.
func Banner(version string) string {
	art := color.New(color.FgCyan, color.Bold).Sprint(logo)
	tagline := color.New(color.FgHiBlack).Sprintf("  named-entity tagger %s", version)
	return fmt.Sprintf("%s%s\n\n", art, tagline)
}

package ui

import (
	"fmt"
	"strings"
)

// Banner is the ASCII-art banner shown by the root command.
const Banner = `
███████╗ ██████╗ ██████╗  ██████╗ ███████╗██╗      ██████╗   ██████╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝██║     ██╔═══██╗ ██╔════╝
█████╗  ██║   ██║██████╔╝██║  ███╗█████╗  ██║     ██║   ██║ ██║  ███╗
██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝  ██║     ██║   ██║ ██║   ██║
███████╗╚██████╔╝██║  ██║╚██████╔╝███████╗███████╗╚██████╔╝ ╚██████╔╝
╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝ ╚═════╝   ╚═════╝
`

// Tagline is shown directly under the banner.
const Tagline = "ForgeLoop – Spec-Driven Development Toolkit"

// PrintBanner prints the styled banner and tagline to stdout.
func PrintBanner() {
	fmt.Println(BannerStyle.Render(strings.TrimRight(Banner, "\n")))
	fmt.Println(TaglineStyle.Render(Tagline))
	fmt.Println()
}

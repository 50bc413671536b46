package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite displays a warning box and prompts the user to confirm
// scaffolding into a directory that already has contents. Returns true if
// the user confirmed, false otherwise.
func ConfirmOverwrite(path string, conflicts []string) bool {
	width := GetTerminalWidth()
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   ⚠  WARNING  ─  %s is not empty", path))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	itemStyle := lipgloss.NewStyle().Foreground(TextColor)
	lines = append(lines, itemStyle.Render("   Existing entries that may be overwritten:"))
	for _, conflict := range conflicts {
		lines = append(lines, itemStyle.Render("   • "+conflict))
	}
	lines = append(lines, "")

	noteStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true).
		Width(width - 12).
		PaddingLeft(3)
	lines = append(lines, noteStyle.Render("Template files with the same names will replace the existing ones. Other files are left untouched."))
	lines = append(lines, "")

	content := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width - 2).
		Padding(0, 2).
		Render(content)

	fmt.Println(box)
	fmt.Println()

	promptStyle := lipgloss.NewStyle().Foreground(TextColor).Bold(true)
	fmt.Print(promptStyle.Render("   Continue? [y/N]: "))

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

package issue

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DisplayTitleLength is the number of title characters shown by Display.
	DisplayTitleLength = 30
	// DisplayMaxLabels is the number of labels shown by Display.
	DisplayMaxLabels = 4
)

var (
	referenceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	missingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	assigneeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	relationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// String renders the issue in the fragment syntax it was written in.
func (i Issue) String() string {
	var b strings.Builder

	if i.LocalNumber != nil {
		b.WriteString("<" + LocalRef(*i.LocalNumber).String() + "> ")
	}
	if i.Title != "" {
		b.WriteString(i.Title)
	} else {
		b.WriteString("<No title>")
	}
	if len(i.Labels) > 0 {
		b.WriteString(" " + prefixed("~", i.Labels))
	}
	if i.Milestone != "" {
		b.WriteString(" %" + i.Milestone)
	}
	if len(i.Assignees) > 0 {
		b.WriteString(" " + prefixed("@", i.Assignees))
	}
	if i.Parent != nil {
		b.WriteString(" " + relationToken("^", *i.Parent))
	}
	for _, blocker := range i.BlockedBy {
		b.WriteString(" " + relationToken(">", blocker))
	}
	if i.Description != "" {
		b.WriteString(": " + i.Description)
	}

	return b.String()
}

// Display renders a short colored one-line summary of the issue.
func (i Issue) Display() string {
	var parts []string

	if i.LocalNumber != nil {
		parts = append(parts, referenceStyle.Render("<"+LocalRef(*i.LocalNumber).String()+">"))
	}

	title := []rune(i.Title)
	switch {
	case len(title) == 0:
		parts = append(parts, missingStyle.Render("<No title>"))
	case len(title) > DisplayTitleLength:
		parts = append(parts, titleStyle.Render(string(title[:DisplayTitleLength])), dimStyle.Render("(...)"))
	default:
		parts = append(parts, titleStyle.Render(i.Title))
	}

	if len(i.Labels) > 0 {
		shown := i.Labels
		if len(shown) > DisplayMaxLabels {
			shown = shown[:DisplayMaxLabels]
		}
		parts = append(parts, labelStyle.Render(prefixed("~", shown)))
		if len(i.Labels) > DisplayMaxLabels {
			parts = append(parts, dimStyle.Render("~..."))
		}
	}
	if i.Milestone != "" {
		parts = append(parts, milestoneStyle.Render("%"+i.Milestone))
	}
	if len(i.Assignees) > 0 {
		parts = append(parts, assigneeStyle.Render(prefixed("@", i.Assignees)))
	}
	if i.Parent != nil {
		parts = append(parts, relationStyle.Render(relationToken("^", *i.Parent)))
	}
	for _, blocker := range i.BlockedBy {
		parts = append(parts, relationStyle.Render(relationToken(">", blocker)))
	}
	if i.Description != "" {
		parts = append(parts, titleStyle.Render("[...]"))
	}

	return strings.Join(parts, " ")
}

func prefixed(sigil string, words []string) string {
	out := make([]string, len(words))
	for idx, w := range words {
		out[idx] = sigil + w
	}
	return strings.Join(out, " ")
}

// relationToken renders a parent or blocker in fragment syntax, e.g. ^12 or >.3.
func relationToken(sigil string, ref Reference) string {
	return sigil + strings.TrimPrefix(ref.String(), "#")
}

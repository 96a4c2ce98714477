package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quotebook/internal/quotes"
	"quotebook/pkg/models"
)

func (m Model) View() string {
	switch m.screen {
	case screenBook:
		return m.viewBook()
	case screenEdit:
		return m.viewEdit()
	default:
		return m.viewCatalog()
	}
}

func (m Model) viewCatalog() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Quotebook"))
	sb.WriteString("\n")

	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := quotes.FormatTitle(t)
		if i == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n\n")

	if len(m.books) == 0 {
		sb.WriteString(m.styles.Subtle.Render("No books in this category."))
		sb.WriteString("\n")
	}
	for i, b := range m.books {
		prefix := "  "
		title := b.Title
		if i == m.cursor {
			prefix = m.styles.Cursor.Render("> ")
			title = m.styles.Cursor.Render(title)
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", prefix, title, m.styles.Subtle.Render(fmt.Sprintf("(%d)", b.QuoteCount))))
		if b.Description != "" {
			sb.WriteString("    " + m.styles.Subtle.Render(b.Description) + "\n")
		}
	}

	sb.WriteString(m.styles.Help.Render("tab/←/→ category • ↑/↓ move • enter open • q quit"))
	return sb.String()
}

func (m Model) viewBook() string {
	var sb strings.Builder
	if m.view == nil {
		return ""
	}

	if m.view.Failed() {
		sb.WriteString(m.styles.Error.Render(m.view.Title))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render(m.view.Err.Error()))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("esc back • q quit"))
		return sb.String()
	}

	sb.WriteString(m.styles.Title.Render(m.view.Title))
	sb.WriteString("\n")

	if len(m.view.Categories) > 0 {
		_, filtered := m.view.Filter.Category()
		allChip := m.styles.Chip.Render("All")
		if !filtered {
			allChip = m.styles.ActiveChip.Render("All")
		}
		chips := []string{allChip}
		for i, c := range m.view.Categories {
			label := c
			if i == m.chipIdx {
				label = "›" + label
			}
			if m.view.Filter.Is(c) {
				chips = append(chips, m.styles.ActiveChip.Render(label))
			} else {
				chips = append(chips, m.styles.Chip.Render(label))
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		sb.WriteString("\n")
	}

	visible := m.view.Visible()
	if len(visible) == 0 {
		sb.WriteString(m.styles.Subtle.Render("No quotes to show."))
		sb.WriteString("\n")
	}
	for i, q := range visible {
		m.renderQuote(&sb, q, i == m.quoteIdx)
	}

	if m.status != "" {
		if m.statusErr {
			sb.WriteString(m.styles.Error.Render(m.status))
		} else {
			sb.WriteString(m.styles.Subtle.Render(m.status))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render("↑/↓ move • enter expand • ←/→ chip • c toggle chip • a all • e comment • esc back"))
	return sb.String()
}

func (m Model) renderQuote(sb *strings.Builder, q models.Quote, selected bool) {
	prefix := "  "
	text := q.Text
	if selected {
		prefix = m.styles.Cursor.Render("> ")
	}
	sb.WriteString(prefix + m.styles.Quote.Render(text) + "\n")

	if !m.view.Expansion.IsExpanded(q.Key) {
		return
	}

	var meta []string
	if q.Author != "" {
		meta = append(meta, q.Author)
	}
	if q.Book != "" {
		meta = append(meta, q.Book)
	}
	if q.Chapter != "" {
		meta = append(meta, q.Chapter)
	}
	if len(meta) > 0 {
		sb.WriteString(m.styles.Detail.Render("- "+strings.Join(meta, ", ")) + "\n")
	}
	if len(q.Category) > 0 {
		sb.WriteString(m.styles.Detail.Render("Categories: "+strings.Join(q.Category, ", ")) + "\n")
	}

	renderNotes(sb, m.styles, "Comments", q.Comments)
	renderNotes(sb, m.styles, "Affirmations", q.Affirmations)
	renderNotes(sb, m.styles, "Applications", q.Applications)

	if draft := m.drafts[q.ID]; draft != "" {
		sb.WriteString(m.styles.Detail.Render("Your comment: "+draft) + "\n")
	}
}

func renderNotes(sb *strings.Builder, st Styles, label string, notes []models.Annotation) {
	if len(notes) == 0 {
		return
	}
	sb.WriteString(st.Detail.Render(label+":") + "\n")
	for _, n := range notes {
		line := "• " + n.Text
		if n.Date != "" {
			line += " (" + quotes.FormatDate(n.Date) + ")"
		}
		sb.WriteString(st.Detail.Render("  "+line) + "\n")
	}
}

func (m Model) viewEdit() string {
	var sb strings.Builder
	if q, ok := m.selectedQuote(); ok {
		sb.WriteString(m.styles.Title.Render("Comment on " + q.ID))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Subtle.Render(q.Text))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.editor.View())
	sb.WriteString(m.styles.Help.Render("ctrl+s save • esc cancel"))
	return sb.String()
}

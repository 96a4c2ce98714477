// Package tui is the interactive terminal quote viewer: a catalog screen with
// category tabs and a book screen with category chips, expandable quotes and
// a comment editor.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"quotebook/internal/catalog"
	"quotebook/internal/viewer"
	"quotebook/pkg/models"
)

// Library is the read side of the book registry.
type Library interface {
	viewer.Resolver
	ListBooks(category string) []models.Book
	Categories() []string
}

// CommentStore loads and saves per-quote comment drafts.
type CommentStore interface {
	All(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, quoteID, text string) (string, error)
}

type screen int

const (
	screenCatalog screen = iota
	screenBook
	screenEdit
)

const storageTimeout = 5 * time.Second

type commentsLoadedMsg struct {
	drafts map[string]string
	err    error
}

type commentSavedMsg struct {
	quoteID string
	text    string
	err     error
}

// Model is the bubbletea model for the whole viewer.
type Model struct {
	library  Library
	comments CommentStore
	styles   Styles

	screen  screen
	width   int
	height  int
	initCmd tea.Cmd

	// catalog screen
	tabs   []string
	tab    int
	books  []models.Book
	cursor int

	// book screen
	view      *viewer.View
	quoteIdx  int
	chipIdx   int
	drafts    map[string]string
	editor    textarea.Model
	editingID string
	status    string
	statusErr bool
}

func New(library Library, comments CommentStore) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your comment..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)

	m := Model{
		library:  library,
		comments: comments,
		styles:   DefaultStyles(),
		tabs:     library.Categories(),
		drafts:   map[string]string{},
		editor:   ta,
	}
	m.books = library.ListBooks(m.currentTab())
	return m
}

// OpenBook starts the model on the book screen for token, as when the
// viewer is launched with /book/<token>. The returned command is also what
// Init will run.
func (m Model) OpenBook(token string) (Model, tea.Cmd) {
	m, cmd := m.openBook(token)
	m.initCmd = cmd
	return m, cmd
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if msg.Width > 8 {
			m.editor.SetWidth(msg.Width - 8)
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.err != nil {
			m.setStatus("could not load comments: "+msg.err.Error(), true)
			return m, nil
		}
		m.drafts = msg.drafts
		if m.drafts == nil {
			m.drafts = map[string]string{}
		}
		return m, nil

	case commentSavedMsg:
		if msg.err != nil {
			m.setStatus("save failed: "+msg.err.Error(), true)
			return m, nil
		}
		if msg.text == "" {
			delete(m.drafts, msg.quoteID)
		} else {
			m.drafts[msg.quoteID] = msg.text
		}
		m.setStatus("comment saved", false)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenCatalog:
			return m.updateCatalog(msg)
		case screenBook:
			return m.updateBook(msg)
		case screenEdit:
			return m.updateEdit(msg)
		}
	}

	if m.screen == screenEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(m.tabs)
		m.selectTab()
	case "shift+tab", "left", "h":
		m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
		m.selectTab()
	case "down", "j":
		if m.cursor < len(m.books)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.books) == 0 {
			return m, nil
		}
		return m.openBook(m.books[m.cursor].Path)
	}
	return m, nil
}

func (m Model) updateBook(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.screen = screenCatalog
		m.view = nil
		m.status = ""
		return m, nil
	}

	if m.view == nil || m.view.Failed() {
		return m, nil
	}

	visible := m.view.Visible()
	switch msg.String() {
	case "down", "j":
		if m.quoteIdx < len(visible)-1 {
			m.quoteIdx++
		}
	case "up", "k":
		if m.quoteIdx > 0 {
			m.quoteIdx--
		}
	case "right", "l":
		if m.chipIdx < len(m.view.Categories)-1 {
			m.chipIdx++
		}
	case "left", "h":
		if m.chipIdx > 0 {
			m.chipIdx--
		}
	case "c":
		if len(m.view.Categories) > 0 {
			m.view.ToggleCategory(m.view.Categories[m.chipIdx])
			m.clampQuote()
		}
	case "a":
		m.view.ClearCategory()
		m.clampQuote()
	case "enter", " ":
		if q, ok := m.selectedQuote(); ok {
			m.view.ToggleQuote(q.Key)
		}
	case "e":
		q, ok := m.selectedQuote()
		if !ok {
			return m, nil
		}
		m.editingID = q.ID
		m.editor.SetValue(m.drafts[q.ID])
		m.screen = screenEdit
		m.status = ""
		cmd := m.editor.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.screen = screenBook
		m.editingID = ""
		return m, nil
	case "ctrl+s":
		id, text := m.editingID, m.editor.Value()
		m.editor.Blur()
		m.screen = screenBook
		m.editingID = ""
		return m, m.saveComment(id, text)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) openBook(token string) (Model, tea.Cmd) {
	m.view = viewer.Open(m.library, token)
	m.screen = screenBook
	m.quoteIdx = 0
	m.chipIdx = 0
	m.status = ""
	if m.view.Failed() {
		return m, nil
	}
	return m, m.loadComments()
}

func (m *Model) selectTab() {
	m.books = m.library.ListBooks(m.currentTab())
	m.cursor = 0
}

func (m Model) currentTab() string {
	if len(m.tabs) == 0 {
		return catalog.AllCategories
	}
	return m.tabs[m.tab]
}

func (m Model) selectedQuote() (models.Quote, bool) {
	visible := m.view.Visible()
	if m.quoteIdx < 0 || m.quoteIdx >= len(visible) {
		return models.Quote{}, false
	}
	return visible[m.quoteIdx], true
}

func (m *Model) clampQuote() {
	n := len(m.view.Visible())
	if m.quoteIdx >= n {
		m.quoteIdx = n - 1
	}
	if m.quoteIdx < 0 {
		m.quoteIdx = 0
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m Model) loadComments() tea.Cmd {
	store := m.comments
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		drafts, err := store.All(ctx)
		return commentsLoadedMsg{drafts: drafts, err: err}
	}
}

func (m Model) saveComment(quoteID, text string) tea.Cmd {
	store := m.comments
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		saved, err := store.Save(ctx, quoteID, text)
		return commentSavedMsg{quoteID: quoteID, text: saved, err: err}
	}
}

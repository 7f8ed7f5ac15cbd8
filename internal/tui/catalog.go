package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workshop-scheduler/internal/listview"
	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/nav"
)

const catalogTitle = "Platillos"

// Catalog is the read-only dish browser.
type Catalog struct {
	dishes []model.Dish
	keys   KeyMap
	theme  Theme
	stack  *nav.Stack

	width  int
	height int
	cursor int

	detail viewport.Model
}

func NewCatalog(dishes []model.Dish) Catalog {
	return Catalog{
		dishes: dishes,
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
		stack:  nav.NewStack(),
		detail: viewport.New(80, 20),
	}
}

func (c Catalog) Init() tea.Cmd { return nil }

func (c Catalog) columns() int {
	return listview.Columns(c.width, c.height*cellAspect)
}

func (c Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.detail.Width = msg.Width
		c.detail.Height = max(msg.Height-2, 1)
		if r := c.stack.Current(); r.Screen == nav.Detail {
			c.detail.SetContent(c.renderDetail(*r.Dish))
		}
		return c, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return c, tea.Quit
		}
		if c.stack.Current().Screen == nav.Detail {
			return c.updateDetail(msg)
		}
		return c.updateList(msg)
	}
	return c, nil
}

func (c Catalog) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := c.columns()
	switch {
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit
	case key.Matches(msg, c.keys.Up):
		if c.cursor-cols >= 0 {
			c.cursor -= cols
		}
	case key.Matches(msg, c.keys.Down):
		if c.cursor+cols < len(c.dishes) {
			c.cursor += cols
		}
	case key.Matches(msg, c.keys.Left):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, c.keys.Right):
		if c.cursor < len(c.dishes)-1 {
			c.cursor++
		}
	case key.Matches(msg, c.keys.Open):
		if c.cursor < len(c.dishes) {
			d := c.dishes[c.cursor]
			c.stack.Push(nav.Route{Screen: nav.Detail, Dish: &d})
			c.detail.SetContent(c.renderDetail(d))
			c.detail.GotoTop()
		}
	}
	return c, nil
}

func (c Catalog) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Back):
		c.stack.Back()
		return c, nil
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit
	}
	var cmd tea.Cmd
	c.detail, cmd = c.detail.Update(msg)
	return c, cmd
}

func (c Catalog) View() string {
	if r := c.stack.Current(); r.Screen == nav.Detail {
		return c.theme.header().Render(r.Screen.String()) + "\n" + c.detail.View()
	}
	return c.viewList()
}

func (c Catalog) contentWidth() int {
	if c.width <= 0 {
		return 80
	}
	return c.width
}

func (c Catalog) viewList() string {
	cols := c.columns()
	cardWidth := c.contentWidth()/cols - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	var cards []string
	for i, d := range c.dishes {
		cards = append(cards, c.card(d, cardWidth, i == c.cursor))
	}
	var rows []string
	for _, row := range listview.Rows(slices.Values(cards), cols) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	body := strings.Join(visibleRows(rows, c.cursor/cols, c.height), "\n")
	return c.theme.header().Render(catalogTitle) + "\n\n" +
		body + "\n" +
		c.theme.faint().Render("enter detalles · ←↑↓→ mover · q salir")
}

// card shows the name and at most two lines of description.
func (c Catalog) card(d model.Dish, width int, selected bool) string {
	inner := width - 2
	wrapped := strings.Split(lipgloss.NewStyle().Width(inner).Render(d.Description), "\n")
	if len(wrapped) > 2 {
		wrapped = wrapped[:2]
		wrapped[1] = strings.TrimRight(wrapped[1], " ") + "…"
	}
	body := c.theme.cardTitle().Render(d.Name) + "\n" + strings.Join(wrapped, "\n")
	return c.theme.card(width, selected).Render(body)
}

func (c Catalog) renderDetail(d model.Dish) string {
	width := c.contentWidth() - 2
	text := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(c.theme.faint().Render("[" + d.Image + "]"))
	b.WriteString("\n\n")
	b.WriteString(c.theme.cardTitle().Render(d.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Región: %s\n", d.Region)
	fmt.Fprintf(&b, "Categoría: %s\n", d.Category)
	fmt.Fprintf(&b, "Precio: $%.2f\n\n", d.Price)
	b.WriteString(text.Render(d.Description))
	b.WriteString("\n\n")
	b.WriteString(c.theme.label().Render("Ingredientes:"))
	b.WriteString("\n")
	for _, ing := range d.Ingredients {
		b.WriteString("  • " + ing + "\n")
	}
	b.WriteString("\n")
	b.WriteString(c.theme.faint().Render("esc volver · ↑↓ desplazar"))
	return b.String()
}

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workshop-scheduler/internal/form"
	"workshop-scheduler/internal/listview"
	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/nav"
	"workshop-scheduler/internal/store"
)

// cellAspect converts terminal rows to column-equivalent units: a cell
// is roughly twice as tall as it is wide.
const cellAspect = 2

const (
	workshopTitle = "Citas - Taller Mecánico"
	emptyText     = "No hay citas. Usa + Agregar para crear una."
)

type storeChangedMsg struct{}

// mutationResultMsg is sent when a store write issued from a Cmd has
// finished. saved is set for create/edit, removed for delete.
type mutationResultMsg struct {
	saved   model.Appointment
	removed string
}

func listenForChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Workshop is the appointment scheduler application.
type Workshop struct {
	store *store.Store[model.Appointment]
	now   func() time.Time
	keys  KeyMap
	theme Theme

	stack   *nav.Stack
	changes <-chan struct{}
	cancel  func()

	width  int
	height int

	// sorted is the display order, rebuilt on every store change.
	sorted []model.Appointment
	cursor int

	// confirm is the appointment awaiting delete confirmation.
	confirm *model.Appointment
	// alert is a blocking validation message over the form.
	alert string

	form *formScreen
	// missing is set when an Edit route resolved to nothing.
	missing bool
}

// NewWorkshop builds the scheduler over an already loaded store. now
// is the clock used for validation; nil means time.Now.
func NewWorkshop(st *store.Store[model.Appointment], now func() time.Time) Workshop {
	if now == nil {
		now = time.Now
	}
	ch, cancel := st.Subscribe()
	w := Workshop{
		store:   st,
		now:     now,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		stack:   nav.NewStack(),
		changes: ch,
		cancel:  cancel,
	}
	w.refresh()
	return w
}

// Close stops store notifications.
func (w Workshop) Close() { w.cancel() }

func (w Workshop) Init() tea.Cmd {
	return listenForChanges(w.changes)
}

func (w *Workshop) refresh() {
	w.sorted = slices.Collect(listview.Sorted(w.store.List(), w.now().Location()))
	if w.cursor >= len(w.sorted) {
		w.cursor = len(w.sorted) - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
}

func (w Workshop) columns() int {
	return listview.Columns(w.width, w.height*cellAspect)
}

func (w Workshop) selected() (model.Appointment, bool) {
	if w.cursor < 0 || w.cursor >= len(w.sorted) {
		return model.Appointment{}, false
	}
	return w.sorted[w.cursor], true
}

func (w Workshop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case storeChangedMsg:
		w.refresh()
		return w, listenForChanges(w.changes)

	case mutationResultMsg:
		w.refresh()
		if msg.saved.ID != "" {
			if i := slices.IndexFunc(w.sorted, func(a model.Appointment) bool { return a.ID == msg.saved.ID }); i >= 0 {
				w.cursor = i
			}
		}
		return w, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return w, tea.Quit
		}
		switch w.stack.Current().Screen {
		case nav.Create, nav.Edit:
			return w.updateForm(msg)
		default:
			return w.updateList(msg)
		}
	}

	if w.form != nil {
		return w, w.form.updateInput(msg)
	}
	return w, nil
}

func (w Workshop) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if w.confirm != nil {
		switch {
		case key.Matches(msg, w.keys.Confirm):
			id := w.confirm.ID
			w.confirm = nil
			return w, removeAppointment(w.store, id)
		case key.Matches(msg, w.keys.Cancel):
			w.confirm = nil
		}
		return w, nil
	}

	cols := w.columns()
	switch {
	case key.Matches(msg, w.keys.Quit):
		return w, tea.Quit
	case key.Matches(msg, w.keys.Up):
		if w.cursor-cols >= 0 {
			w.cursor -= cols
		}
	case key.Matches(msg, w.keys.Down):
		if w.cursor+cols < len(w.sorted) {
			w.cursor += cols
		}
	case key.Matches(msg, w.keys.Left):
		if w.cursor > 0 {
			w.cursor--
		}
	case key.Matches(msg, w.keys.Right):
		if w.cursor < len(w.sorted)-1 {
			w.cursor++
		}
	case key.Matches(msg, w.keys.Add):
		return w.openForm(nav.Route{Screen: nav.Create})
	case key.Matches(msg, w.keys.Edit), key.Matches(msg, w.keys.Open):
		if a, ok := w.selected(); ok {
			return w.openForm(nav.Route{Screen: nav.Edit, ID: a.ID, Fallback: &a})
		}
	case key.Matches(msg, w.keys.Delete):
		if a, ok := w.selected(); ok {
			w.confirm = &a
		}
	}
	return w, nil
}

func (w Workshop) openForm(r nav.Route) (tea.Model, tea.Cmd) {
	w.stack.Push(r)
	w.alert = ""
	w.missing = false

	var f *form.Form
	if r.Screen == nav.Edit {
		a, err := nav.ResolveEdit(r, w.store)
		if err != nil {
			w.missing = true
			w.form = nil
			return w, nil
		}
		f = form.NewEdit(a, w.store, w.now)
	} else {
		f = form.NewCreate(w.store, w.now)
	}
	w.form = newFormScreen(f, w.theme)
	return w, textinput.Blink
}

func (w Workshop) closeForm() Workshop {
	w.stack.Back()
	w.form = nil
	w.alert = ""
	w.missing = false
	return w
}

func (w Workshop) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if w.alert != "" {
		// blocking dialog: only dismiss
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			w.alert = ""
		}
		return w, nil
	}
	if w.missing || w.form == nil {
		if msg.Type == tea.KeyEsc {
			return w.closeForm(), nil
		}
		return w, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		return w.closeForm(), nil
	case key.Matches(msg, w.keys.Submit):
		return w.submit()
	case msg.Type == tea.KeyEnter:
		if w.form.lastFocused() {
			return w.submit()
		}
		return w, w.form.next()
	case key.Matches(msg, w.keys.NextField):
		return w, w.form.next()
	case key.Matches(msg, w.keys.PrevField):
		return w, w.form.prev()
	}
	return w, w.form.updateInput(msg)
}

// submit validates in the event loop and leaves the write to a Cmd.
func (w Workshop) submit() (tea.Model, tea.Cmd) {
	w.form.sync()
	f := w.form.form
	a, err := f.Check()
	if err != nil {
		w.alert = err.Error()
		return w, nil
	}
	w = w.closeForm()
	return w, func() tea.Msg {
		return mutationResultMsg{saved: f.Commit(context.Background(), a)}
	}
}

func removeAppointment(st *store.Store[model.Appointment], id string) tea.Cmd {
	return func() tea.Msg {
		st.Remove(context.Background(), id)
		return mutationResultMsg{removed: id}
	}
}

func (w Workshop) View() string {
	var body string
	switch w.stack.Current().Screen {
	case nav.Create, nav.Edit:
		body = w.viewForm()
	default:
		body = w.viewList()
	}
	if w.width > 0 {
		return lipgloss.NewStyle().MaxWidth(w.width).Render(body)
	}
	return body
}

func (w Workshop) viewForm() string {
	title := w.theme.header().Render(w.stack.Current().Screen.String())
	if w.missing {
		return title + "\n\n" + nav.MissingEditText + "\n\n" + w.theme.faint().Render("esc volver")
	}
	content := w.form.view(w.theme, w.contentWidth())
	if w.alert != "" {
		return title + "\n\n" + w.viewDialog("Validación", w.alert, "enter aceptar", w.theme.Accent)
	}
	return title + "\n\n" + content
}

func (w Workshop) contentWidth() int {
	if w.width <= 0 {
		return 80
	}
	return w.width
}

func (w Workshop) viewList() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		w.theme.header().Render(workshopTitle),
		"   ",
		w.theme.button(w.theme.Accent).Render("+ Agregar"),
	)

	if w.confirm != nil {
		a := w.confirm
		text := fmt.Sprintf("¿Eliminar la cita de %s (%s) el %s %s?", a.Name, a.Model, a.Date, a.Time)
		return header + "\n\n" + w.viewDialog("Eliminar cita", text, "s eliminar · n cancelar", w.theme.Danger)
	}

	if len(w.sorted) == 0 {
		return header + "\n\n" + w.theme.faint().Render(emptyText) + "\n\n" + w.help()
	}

	cols := w.columns()
	cardWidth := w.contentWidth()/cols - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	var rendered []string
	for i, a := range w.sorted {
		rendered = append(rendered, w.card(a, cardWidth, i == w.cursor))
	}
	var rows []string
	for _, row := range listview.Rows(slices.Values(rendered), cols) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	cursorRow := w.cursor / cols
	body := strings.Join(visibleRows(rows, cursorRow, w.height), "\n")
	return header + "\n\n" + body + "\n" + w.help()
}

// visibleRows drops leading rows until the cursor row fits in the
// space a screen of the given height leaves under the header and above
// the help line.
func visibleRows(rows []string, cursorRow, height int) []string {
	if height <= 0 {
		return rows
	}
	avail := height - 4
	start := 0
	for start < cursorRow {
		used := 0
		for _, r := range rows[start : cursorRow+1] {
			used += lipgloss.Height(r)
		}
		if used <= avail {
			break
		}
		start++
	}
	return rows[start:]
}

func (w Workshop) card(a model.Appointment, width int, selected bool) string {
	lines := []string{
		w.theme.cardTitle().Render(a.Name),
		"Vehículo: " + a.Model,
		"Fecha: " + a.Date + " " + a.Time,
	}
	if a.Description != "" {
		lines = append(lines, "Nota: "+a.Description)
	}
	return w.theme.card(width, selected).Render(strings.Join(lines, "\n"))
}

func (w Workshop) viewDialog(title, text, help string, border lipgloss.Color) string {
	width := w.contentWidth() - 8
	if width > 60 {
		width = 60
	}
	content := w.theme.header().Render(title) + "\n\n" +
		lipgloss.NewStyle().Width(width).Render(text) + "\n\n" +
		w.theme.faint().Render(help)
	return w.theme.dialog(border).Render(content)
}

func (w Workshop) help() string {
	return w.theme.faint().Render("a agregar · e editar · d eliminar · ←↑↓→ mover · q salir")
}

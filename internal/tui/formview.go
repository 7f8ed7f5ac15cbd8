package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workshop-scheduler/internal/form"
)

type fieldSpec struct {
	name        string
	label       string
	placeholder string
}

var fieldSpecs = []fieldSpec{
	{form.FieldName, "Nombre del cliente *", "Ej: Juan Perez"},
	{form.FieldModel, "Modelo del vehículo *", "Ej: Toyota Corolla 2015"},
	{form.FieldDate, "Fecha (YYYY-MM-DD) *", "2025-09-05"},
	{form.FieldTime, "Hora (HH:MM - 24h) *", "14:30"},
	{form.FieldDescription, "Descripción (opcional)", "Descripción del problema"},
}

// formScreen binds one textinput per form field. Input lives in the
// textinputs; it is copied into the form right before submit.
type formScreen struct {
	form   *form.Form
	inputs []textinput.Model
	focus  int
}

func newFormScreen(f *form.Form, theme Theme) *formScreen {
	s := &formScreen{form: f}
	for _, spec := range fieldSpecs {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = spec.placeholder
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Faint)
		in.SetValue(f.Value(spec.name))
		s.inputs = append(s.inputs, in)
	}
	s.inputs[0].Focus()
	return s
}

func (s *formScreen) setFocus(i int) tea.Cmd {
	n := len(s.inputs)
	i = ((i % n) + n) % n
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *formScreen) next() tea.Cmd { return s.setFocus(s.focus + 1) }
func (s *formScreen) prev() tea.Cmd { return s.setFocus(s.focus - 1) }

func (s *formScreen) lastFocused() bool { return s.focus == len(s.inputs)-1 }

// updateInput forwards a message to the focused input.
func (s *formScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

// sync copies the textinput values into the form.
func (s *formScreen) sync() {
	for i, spec := range fieldSpecs {
		// field names come from form.Fields, Set cannot fail here
		_ = s.form.Set(spec.name, s.inputs[i].Value())
	}
}

func (s *formScreen) view(theme Theme, width int) string {
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Edit).
		Width(inputWidth)

	var b strings.Builder
	for i, spec := range fieldSpecs {
		b.WriteString(theme.label().Render(spec.label))
		b.WriteString("\n")
		b.WriteString(box.Render(s.inputs[i].View()))
		b.WriteString("\n")
	}

	submit := "Crear cita"
	if s.form.Mode() == form.Edit {
		submit = "Guardar cambios"
	}
	b.WriteString("\n")
	b.WriteString(theme.button(theme.Accent).Render(submit))
	b.WriteString("  ")
	b.WriteString(theme.faint().Render("ctrl+s guardar · tab siguiente · esc volver"))
	return b.String()
}

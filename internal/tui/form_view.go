package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gesol/go-solar-backend/internal/domain"
)

// Quote form field indices.
const (
	budgetFieldName = iota
	budgetFieldEmail
	budgetFieldPhone
	budgetFieldLocation
	budgetFieldCount
)

// roofTypes is the cycle order for the roof-type selector.
var roofTypes = []string{
	domain.RoofCeramic,
	domain.RoofMetal,
	domain.RoofConcrete,
	domain.RoofFiberCement,
	domain.RoofOther,
}

// roofTypeLabels maps the wire values to display labels.
var roofTypeLabels = map[string]string{
	domain.RoofCeramic:     "Cerâmico",
	domain.RoofMetal:       "Metálico",
	domain.RoofConcrete:    "Concreto",
	domain.RoofFiberCement: "Fibrocimento",
	domain.RoofOther:       "Outro",
}

// budgetForm holds the text inputs and roof-type selection of the quote form.
type budgetForm struct {
	inputs    []textinput.Model
	focus     int
	roofIndex int
}

func newBudgetForm() budgetForm {
	inputs := make([]textinput.Model, budgetFieldCount)
	for i, placeholder := range []string{"Nome", "Email", "Telefone", "Cidade, UF"} {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].CharLimit = 255
	}
	inputs[budgetFieldPhone].CharLimit = 20
	return budgetForm{inputs: inputs}
}

func (f budgetForm) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

func (f budgetForm) roofType() string { return roofTypes[f.roofIndex] }

func (f *budgetForm) focusFirst() {
	f.focus = 0
	f.updateFocus()
}

func (f *budgetForm) next() {
	f.focus = (f.focus + 1) % len(f.inputs)
	f.updateFocus()
}

func (f *budgetForm) updateFocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to the calculator; the estimate is recomputed fresh on the
		// next compute step.
		m.screen = ScreenCalculator
		m.estimateOK = false
		return m, nil
	case "tab":
		m.form.next()
		return m, nil
	case "ctrl+t":
		m.form.roofIndex = (m.form.roofIndex + 1) % len(roofTypes)
		return m, nil
	case "enter":
		m.status = StatusLoading
		return m, m.submitBudget()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) renderForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SOLICITAR ORÇAMENTO"))
	s.WriteString("\n\n")

	if m.estimateOK {
		s.WriteString(renderEstimate(m.estimate))
	}

	for i, input := range m.form.inputs {
		if i == m.form.focus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString(labelStyle.Render("  Telhado: "))
	s.WriteString(valueStyle.Render(roofTypeLabels[m.form.roofType()]))
	s.WriteString("\n\n")

	if line := m.renderStatusLine(); line != "" {
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(
		"Tab: próximo campo • Ctrl+T: tipo de telhado • Enter: enviar • Esc: voltar"))
	return s.String()
}

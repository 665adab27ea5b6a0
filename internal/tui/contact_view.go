package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Contact form field indices.
const (
	contactFieldName = iota
	contactFieldEmail
	contactFieldPhone
	contactFieldSubject
	contactFieldMessage
	contactFieldCount
)

// contactForm holds the text inputs of the standalone contact form.
type contactForm struct {
	inputs []textinput.Model
	focus  int
}

func newContactForm() contactForm {
	inputs := make([]textinput.Model, contactFieldCount)
	for i, placeholder := range []string{"Nome", "Email", "Telefone", "Assunto", "Mensagem"} {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].CharLimit = 255
	}
	inputs[contactFieldMessage].CharLimit = 2000
	return contactForm{inputs: inputs}
}

func (f contactForm) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

func (f *contactForm) focusFirst() {
	f.focus = 0
	f.updateFocus()
}

func (f *contactForm) next() {
	f.focus = (f.focus + 1) % len(f.inputs)
	f.updateFocus()
}

func (f *contactForm) updateFocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (m Model) handleContactKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = ScreenCalculator
		return m, nil
	case "tab":
		m.contact.next()
		return m, nil
	case "enter":
		m.status = StatusLoading
		return m, m.submitContact()
	}

	var cmd tea.Cmd
	m.contact.inputs[m.contact.focus], cmd = m.contact.inputs[m.contact.focus].Update(msg)
	return m, cmd
}

func (m Model) renderContact() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("FALE CONOSCO"))
	s.WriteString("\n\n")

	for i, input := range m.contact.inputs {
		if i == m.contact.focus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}
	s.WriteString("\n")

	if line := m.renderStatusLine(); line != "" {
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: próximo campo • Enter: enviar • Esc: voltar"))
	return s.String()
}

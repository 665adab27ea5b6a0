// Package tui is the interactive terminal client for the lead API. It walks
// the same two flows the website offers: the savings calculator followed by a
// quote form, and a standalone contact form. Estimates are previewed locally;
// submissions go over HTTP.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gesol/go-solar-backend/internal/estimator"
)

// Screen identifies the active TUI screen.
type Screen int

const (
	// ScreenCalculator edits consumption and roof area and previews the
	// estimate locally.
	ScreenCalculator Screen = iota
	// ScreenForm collects contact details for the quote request.
	ScreenForm
	// ScreenContact is the standalone contact form.
	ScreenContact
)

// Status is the submission lifecycle of the active form.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// statusResetDelay is how long success/error feedback stays on screen before
// the status reverts to idle.
const statusResetDelay = 3 * time.Second

// submitTimeout bounds one submission HTTP call.
const submitTimeout = 15 * time.Second

// submitDoneMsg reports the outcome of an async submission.
type submitDoneMsg struct {
	screen Screen
	result SubmitResult
	err    error
}

// statusResetMsg fires after statusResetDelay to clear feedback.
type statusResetMsg struct{ screen Screen }

// Model is the bubbletea model for the whole client.
type Model struct {
	client *Client

	screen Screen
	status Status

	// Calculator state
	consumption float64 // kWh per month
	roofArea    float64 // m²
	estimate    estimator.Result
	estimateOK  bool

	// Quote form state
	form budgetForm

	// Contact form state
	contact contactForm

	// Feedback line shown during success/error
	feedback string

	width  int
	height int
}

// NewModel builds the initial model talking to the given API client.
func NewModel(client *Client) Model {
	return Model{
		client:      client,
		screen:      ScreenCalculator,
		status:      StatusIdle,
		consumption: 300,
		roofArea:    50,
		form:        newBudgetForm(),
		contact:     newContactForm(),
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case statusResetMsg:
		return m.handleStatusReset(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case ScreenCalculator:
		return m.renderCalculator()
	case ScreenForm:
		return m.renderForm()
	case ScreenContact:
		return m.renderContact()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	// While a call is in flight the only accepted key is quit; this is what
	// keeps one submission outstanding at a time.
	if m.status == StatusLoading {
		return m, nil
	}

	switch m.screen {
	case ScreenCalculator:
		return m.handleCalculatorKeys(msg)
	case ScreenForm:
		return m.handleFormKeys(msg)
	case ScreenContact:
		return m.handleContactKeys(msg)
	}
	return m, nil
}

// handleSubmitDone maps a finished HTTP call onto the status machine.
// Success and error both schedule the auto-reset tick.
func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil || !msg.result.Success {
		m.status = StatusError
		switch {
		case msg.err != nil:
			m.feedback = "Falha de conexão: " + msg.err.Error()
		default:
			m.feedback = msg.result.Message
		}
	} else {
		m.status = StatusSuccess
		m.feedback = msg.result.Message
	}
	screen := msg.screen
	return m, tea.Tick(statusResetDelay, func(time.Time) tea.Msg {
		return statusResetMsg{screen: screen}
	})
}

// handleStatusReset reverts feedback to idle. A successful quote submission
// resets the whole flow back to the calculator; an error keeps the form so
// the user can correct and resubmit.
func (m Model) handleStatusReset(msg statusResetMsg) (tea.Model, tea.Cmd) {
	// The user may resubmit before the tick from the previous outcome fires.
	// That stale tick must not clear the loading state: it would unlock the
	// keyboard while the new call is still in flight and allow a second
	// concurrent submission.
	if m.status == StatusLoading {
		return m, nil
	}

	wasSuccess := m.status == StatusSuccess
	m.status = StatusIdle
	m.feedback = ""

	if !wasSuccess {
		return m, nil
	}
	switch msg.screen {
	case ScreenForm:
		m.screen = ScreenCalculator
		m.form = newBudgetForm()
	case ScreenContact:
		m.contact = newContactForm()
	}
	return m, nil
}

// submitBudget runs the quote submission asynchronously.
func (m Model) submitBudget() tea.Cmd {
	client := m.client
	req := BudgetSubmission{
		Name:               m.form.value(budgetFieldName),
		Email:              m.form.value(budgetFieldEmail),
		Phone:              m.form.value(budgetFieldPhone),
		Location:           m.form.value(budgetFieldLocation),
		RoofType:           m.form.roofType(),
		MonthlyConsumption: int(m.consumption),
		RoofArea:           int(m.roofArea),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		res, err := client.SubmitBudget(ctx, req)
		return submitDoneMsg{screen: ScreenForm, result: res, err: err}
	}
}

// submitContact runs the contact submission asynchronously.
func (m Model) submitContact() tea.Cmd {
	client := m.client
	req := ContactSubmission{
		Name:    m.contact.value(contactFieldName),
		Email:   m.contact.value(contactFieldEmail),
		Phone:   m.contact.value(contactFieldPhone),
		Subject: m.contact.value(contactFieldSubject),
		Message: m.contact.value(contactFieldMessage),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		res, err := client.SubmitContact(ctx, req)
		return submitDoneMsg{screen: ScreenContact, result: res, err: err}
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// renderStatusLine renders the shared submission feedback footer.
func (m Model) renderStatusLine() string {
	switch m.status {
	case StatusLoading:
		return loadingStyle.Render("Enviando...")
	case StatusSuccess:
		return successStyle.Render(m.feedback)
	case StatusError:
		return errorStyle.Render(m.feedback)
	}
	return ""
}

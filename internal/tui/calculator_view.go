package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gesol/go-solar-backend/internal/estimator"
)

// Slider bounds mirror the website's calculator controls.
const (
	minConsumption  = 50
	maxConsumption  = 3000
	consumptionStep = 50

	minRoofArea  = 10
	maxRoofArea  = 1000
	roofAreaStep = 10
)

func (m Model) handleCalculatorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.consumption = clampF(m.consumption-consumptionStep, minConsumption, maxConsumption)
	case "right", "l":
		m.consumption = clampF(m.consumption+consumptionStep, minConsumption, maxConsumption)
	case "down", "j":
		m.roofArea = clampF(m.roofArea-roofAreaStep, minRoofArea, maxRoofArea)
	case "up", "k":
		m.roofArea = clampF(m.roofArea+roofAreaStep, minRoofArea, maxRoofArea)
	case "c":
		m.screen = ScreenContact
		m.contact.focusFirst()
		return m, nil
	case "enter":
		// Compute locally and advance to the quote form. No network call.
		res, err := estimator.Estimate(m.consumption, m.roofArea)
		if err != nil {
			return m, nil
		}
		m.estimate = res
		m.estimateOK = true
		m.screen = ScreenForm
		m.form.focusFirst()
		return m, nil
	}
	return m, nil
}

func (m Model) renderCalculator() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SIMULADOR DE ECONOMIA SOLAR"))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Consumo mensal  "))
	s.WriteString(renderSlider(m.consumption, minConsumption, maxConsumption))
	s.WriteString(valueStyle.Render(fmt.Sprintf(" %.0f kWh", m.consumption)))
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("Área do telhado "))
	s.WriteString(renderSlider(m.roofArea, minRoofArea, maxRoofArea))
	s.WriteString(valueStyle.Render(fmt.Sprintf(" %.0f m²", m.roofArea)))
	s.WriteString("\n\n")

	// Live preview of the estimate for the current inputs.
	if res, err := estimator.Estimate(m.consumption, m.roofArea); err == nil {
		s.WriteString(renderEstimate(res))
	}

	s.WriteString(helpStyle.Render(
		"←/→: consumo • ↑/↓: área • Enter: solicitar orçamento • c: fale conosco • q: sair"))
	return s.String()
}

// renderEstimate renders the shared estimate summary block.
func renderEstimate(res estimator.Result) string {
	var s strings.Builder
	s.WriteString(labelStyle.Render("Sistema recomendado: "))
	s.WriteString(valueStyle.Render(fmt.Sprintf("%.1f kW", res.SystemSizeKw)))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Investimento:        "))
	s.WriteString(valueStyle.Render(estimator.FormatBRL(estimator.ToCents(res.EstimatedCost))))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Economia mensal:     "))
	s.WriteString(valueStyle.Render(estimator.FormatBRL(estimator.ToCents(res.EstimatedMonthlySavings))))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Retorno:             "))
	if res.PaybackUndefined {
		s.WriteString(valueStyle.Render("indeterminado"))
	} else {
		s.WriteString(valueStyle.Render(fmt.Sprintf("%d meses", res.PaybackPeriodMonths)))
	}
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("CO2 evitado/mês:     "))
	s.WriteString(valueStyle.Render(fmt.Sprintf("%.0f kg", res.CO2ReductionKgPerMonth)))
	s.WriteString("\n\n")
	return s.String()
}

// renderSlider draws a fixed-width bar proportional to v within [lo, hi].
func renderSlider(v, lo, hi float64) string {
	const width = 20
	filled := int((v - lo) / (hi - lo) * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

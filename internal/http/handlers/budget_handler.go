// Budget HTTP handlers.
//
// This file exposes the REST endpoints for the two-step quote flow:
//   - GET  /budget/calculate  (free what-if estimate, nothing persisted)
//   - POST /budget            (submit a quote request)
//   - GET  /budget            (list stored requests)
//   - GET  /stats             (submission counters)
//
// The submit payload still carries the derived financial fields older clients
// send along; they are accepted for wire compatibility and discarded. The
// service recomputes the estimate from the raw inputs before persisting.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gesol/go-solar-backend/internal/http/middleware"
	"github.com/gesol/go-solar-backend/internal/services"
)

// SubmitBudgetRequest is the JSON payload for a quote request.
type SubmitBudgetRequest struct {
	Name               string `json:"name"                example:"João Souza"`
	Email              string `json:"email"               example:"joao@example.com"`
	Phone              string `json:"phone"               example:"(11) 98888-7777"`
	MonthlyConsumption int    `json:"monthly_consumption" example:"300"`
	RoofArea           int    `json:"roof_area"           example:"50"`
	RoofType           string `json:"roof_type"           example:"ceramic" enums:"ceramic,metal,concrete,fiber-cement,other"`
	Location           string `json:"location"            example:"Campinas, SP"`

	// Derived fields are ignored; the server recomputes them from
	// monthly_consumption and roof_area.
	EstimatedCost           float64 `json:"estimated_cost,omitempty"`
	EstimatedMonthlySavings float64 `json:"estimated_monthly_savings,omitempty"`
	PaybackPeriodMonths     int     `json:"payback_period_months,omitempty"`
}

// CalculateBudget godoc
// @ID          calculateBudget
// @Summary     Preview a savings estimate
// @Description Pure what-if computation from consumption and roof area; nothing is stored.
// @Tags        Budget
// @Produce     json
// @Param       monthly_consumption query number true "Monthly consumption in kWh (> 0)" example(300)
// @Param       roof_area           query number true "Available roof area in m² (> 0)"  example(50)
// @Success     200 {object} estimator.Result
// @Failure     400 {object} handlers.ErrorResponse "Non-positive or missing inputs"
// @Router      /budget/calculate [get]
func (h *Handlers) CalculateBudget(c *gin.Context) {
	consumption, err1 := strconv.ParseFloat(c.Query("monthly_consumption"), 64)
	area, err2 := strconv.ParseFloat(c.Query("roof_area"), 64)
	if err1 != nil || err2 != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "monthly_consumption e roof_area devem ser números")
		return
	}

	res, err := h.budgetSvc.Calculate(c.Request.Context(), consumption, area)
	if err != nil {
		if services.IsValidation(err) {
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, res)
}

// SubmitBudget godoc
// @ID          submitBudget
// @Summary     Submit a quote request
// @Description Validates the request, recomputes the financial estimate server-side, stores the row, then alerts the owner.
// @Tags        Budget
// @Accept      json
// @Produce     json
// @Param       body body handlers.SubmitBudgetRequest true "Budget payload"
// @Success     200 {object} handlers.SubmitResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid or missing fields"
// @Router      /budget [post]
func (h *Handlers) SubmitBudget(c *gin.Context) {
	var req SubmitBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "corpo da requisição inválido")
		return
	}

	_, err := h.budgetSvc.Submit(c.Request.Context(), services.BudgetInput{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		MonthlyConsumptionKwh: req.MonthlyConsumption,
		RoofAreaM2:            req.RoofArea,
		RoofType:              req.RoofType,
		Location:              req.Location,
	})
	if err != nil {
		if services.IsValidation(err) {
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		submitFailed(c, "Erro ao enviar orçamento", err)
		return
	}

	middleware.CountSubmission("budget")
	ok(c, http.StatusOK, SubmitResponse{Success: true, Message: "Orçamento enviado com sucesso!"})
}

// ListBudgets godoc
// @ID          listBudgets
// @Summary     List quote requests
// @Description Returns all stored budget requests in insertion order.
// @Tags        Budget
// @Produce     json
// @Success     200 {array}  domain.Budget
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /budget [get]
func (h *Handlers) ListBudgets(c *gin.Context) {
	list, err := h.budgetSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list budgets")
		return
	}
	ok(c, http.StatusOK, list)
}

// SubmissionStats godoc
// @ID          submissionStats
// @Summary     Submission counters
// @Description Returns how many contact and budget submissions have been stored.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} repo.SubmissionStats
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /stats [get]
func (h *Handlers) SubmissionStats(c *gin.Context) {
	s, err := h.budgetSvc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to compute stats")
		return
	}
	ok(c, http.StatusOK, s)
}

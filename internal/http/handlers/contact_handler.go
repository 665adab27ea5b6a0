// Contact HTTP handlers.
//
// This file exposes the REST endpoints for the contact form:
//   - POST /contact  (submit a message)
//   - GET  /contact  (list stored messages)
//
// Handlers are transport-thin: they decode input, delegate to application
// services, and translate service errors into HTTP results. Field validation
// lives in the service layer so its localized messages reach the caller
// verbatim; the handler only rejects requests whose body is not valid JSON.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gesol/go-solar-backend/internal/http/middleware"
	"github.com/gesol/go-solar-backend/internal/services"
)

// SubmitContactRequest is the JSON payload for a contact-form submission.
// All fields are required; validation happens server-side.
type SubmitContactRequest struct {
	Name    string `json:"name"    example:"Maria Silva"`
	Email   string `json:"email"   example:"maria@example.com"`
	Phone   string `json:"phone"   example:"(11) 99999-9999"`
	Subject string `json:"subject" example:"Instalação residencial"`
	Message string `json:"message" example:"Gostaria de receber um orçamento."`
}

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit a contact message
// @Description Validates and stores a contact-form submission, then alerts the owner.
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body body handlers.SubmitContactRequest true "Contact payload"
// @Success     200 {object} handlers.SubmitResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid or missing fields"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "corpo da requisição inválido")
		return
	}

	_, err := h.contactSvc.Submit(c.Request.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if services.IsValidation(err) {
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		submitFailed(c, "Erro ao enviar contato", err)
		return
	}

	middleware.CountSubmission("contact")
	ok(c, http.StatusOK, SubmitResponse{Success: true, Message: "Contato enviado com sucesso!"})
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact messages
// @Description Returns all stored contact messages in insertion order.
// @Tags        Contact
// @Produce     json
// @Success     200 {array}  domain.Contact
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /contact [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	list, err := h.contactSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list contacts")
		return
	}
	ok(c, http.StatusOK, list)
}

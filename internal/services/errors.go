// Package services defines the business logic for contact submissions,
// budget requests, and the savings estimate. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// Validation errors carry the localized (pt-BR) message shown to end users,
// matching the copy of the public site; they are reported verbatim at the
// handler boundary. Persistence errors are never exposed verbatim; handlers
// log them and return a generic failure message.
package services

import "errors"

// Validation errors. The message text is user-facing.
var (
	// ErrNameRequired is returned when a submission is missing the name.
	ErrNameRequired = errors.New("Nome é obrigatório")

	// ErrInvalidEmail is returned when the email is missing or malformed.
	ErrInvalidEmail = errors.New("Email inválido")

	// ErrPhoneRequired is returned when a submission is missing the phone.
	ErrPhoneRequired = errors.New("Telefone é obrigatório")

	// ErrSubjectRequired is returned when a contact is missing the subject.
	ErrSubjectRequired = errors.New("Assunto é obrigatório")

	// ErrMessageRequired is returned when a contact is missing the body.
	ErrMessageRequired = errors.New("Mensagem é obrigatória")

	// ErrInvalidConsumption is returned when monthly consumption is not a
	// positive number.
	ErrInvalidConsumption = errors.New("Consumo mensal deve ser maior que 0")

	// ErrInvalidRoofArea is returned when roof area is not a positive number.
	ErrInvalidRoofArea = errors.New("Área do telhado deve ser maior que 0")

	// ErrInvalidRoofType is returned when the roof type is not one of the
	// accepted enum values.
	ErrInvalidRoofType = errors.New("Tipo de telhado inválido")

	// ErrLocationRequired is returned when a budget is missing the location.
	ErrLocationRequired = errors.New("Localização é obrigatória")
)

// validationErrs enumerates every sentinel that represents rejected input.
var validationErrs = []error{
	ErrNameRequired,
	ErrInvalidEmail,
	ErrPhoneRequired,
	ErrSubjectRequired,
	ErrMessageRequired,
	ErrInvalidConsumption,
	ErrInvalidRoofArea,
	ErrInvalidRoofType,
	ErrLocationRequired,
}

// IsValidation reports whether err is one of the service validation
// sentinels. Handlers use it to decide between a 400 (input rejected, no
// side effects) and the generic persistence-failure envelope.
func IsValidation(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

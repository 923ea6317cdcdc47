package inbound

import (
	"github.com/shandysiswandi/gocontact/internal/contact/usecase"
	"github.com/shandysiswandi/gocontact/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Health reports that the process is up. It does not probe the mail transport.
// @Summary Health check
// @Tags Contact
// @Produce json
// @Success 200 {object} HealthResponse "Service is running"
// @Router /api/health [get]
func (h *HTTPEndpoint) Health(*router.Request) (any, error) {
	return HealthResponse{Status: "ok", Message: "Portfolio Email API is running"}, nil
}

// SendEmail relays a contact-form submission to the configured recipient.
// @Summary Send contact message
// @Description Validates the submission and sends it through the active mail transport.
// @Tags Contact
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body SendEmailRequest true "Contact form payload"
// @Success 200 {object} SendEmailResponse "Message sent"
// @Failure 400 {object} router.errorResponse "Missing field, invalid email or malformed body"
// @Failure 500 {object} router.errorResponse "Transport failure"
// @Router /api/send-email [post]
func (h *HTTPEndpoint) SendEmail(r *router.Request) (any, error) {
	var req SendEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	res, err := h.uc.SendEmail(r.Context(), usecase.SendEmailInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}

	return SendEmailResponse{
		Success:   true,
		Message:   "Message sent successfully!",
		MessageID: res.ProviderMessageID,
	}, nil
}

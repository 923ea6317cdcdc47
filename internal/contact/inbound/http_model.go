package inbound

type SendEmailRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Subject string `json:"subject" example:"Hello"`
	Message string `json:"message" example:"I enjoyed your portfolio."`
}

type SendEmailResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Message sent successfully!"`
	MessageID string `json:"messageId,omitempty" example:"<0190f7a2-6c1e-7d4e-8a55-3f1f1f2b9c11@example.com>"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Portfolio Email API is running"`
}

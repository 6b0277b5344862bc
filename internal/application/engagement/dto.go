package engagement

// ContactRequest is the contact form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email,max=320"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

// SubscribeRequest is the newsletter signup payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email,max=320"`
}

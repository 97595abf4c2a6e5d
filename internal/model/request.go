package model

// RegisterRequest is the payload of POST /joins. The camp id travels as
// "id", the way the client posts the camp document it joined.
type RegisterRequest struct {
	CampID           string `json:"id" validate:"required"`
	CampName         string `json:"campName" validate:"required,max=255"`
	CampFees         Fee    `json:"campFees"`
	Location         string `json:"location"`
	ProfessionalName string `json:"professionalName"`
	ParticipantName  string `json:"participantName" validate:"max=255"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	Age              int    `json:"age" validate:"gte=0,lte=150"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergencyContact"`
}

// PayRequest is the payload of POST /update-payment-status/{id}.
type PayRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

// PaymentIntentRequest is the payload of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Fees *Fee `json:"fees" validate:"fee"`
}

// PaymentIntentResponse carries the gateway client secret back to the caller.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CampRequest is the payload for creating or updating a camp.
type CampRequest struct {
	CampName         string  `json:"campName" validate:"required,max=255"`
	DateTime         string  `json:"dateTime" validate:"required"`
	Location         string  `json:"location" validate:"required"`
	Fees             float64 `json:"fees" validate:"gte=0"`
	Description      string  `json:"description"`
	Image            string  `json:"image"`
	ProfessionalName string  `json:"professionalName" validate:"required"`
	ParticipantCount int     `json:"participantCount" validate:"gte=0"`
}

// UserRequest is the payload of POST /users.
type UserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     Role   `json:"role" validate:"omitempty,oneof=participant organizer"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// FeedbackRequest is the payload of POST /feedbacks.
type FeedbackRequest struct {
	CampName         string `json:"campName" validate:"required"`
	ParticipantName  string `json:"participantName"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comment          string `json:"comment" validate:"max=2000"`
}

// TokenRequest is the payload of POST /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

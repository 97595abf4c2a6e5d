// Package model defines the core domain types for the medical camp platform.
package model

import "time"

// PaymentStatus is the payment state of a registration.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// ConfirmationStatus is the organizer-side state of a registration.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "Pending"
	ConfirmationConfirmed ConfirmationStatus = "Confirmed"
)

// Role distinguishes participants from camp organizers.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
)

// Camp represents a medical camp published by an organizer.
type Camp struct {
	ID               string    `json:"_id"`
	CampName         string    `json:"campName"`
	DateTime         string    `json:"dateTime"`
	Location         string    `json:"location"`
	Fees             float64   `json:"fees"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	ProfessionalName string    `json:"professionalName"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RegistrationRef is the value a payment carries to point back at its
// registration. It is matched by value; no store enforces the link.
type RegistrationRef string

// Registration is a participant's claim on a camp slot.
//
// CampName and CampFees are captured when the participant joins and are not
// re-synced if the camp changes later.
type Registration struct {
	ID                 string             `json:"_id"`
	CampID             string             `json:"id"`
	CampName           string             `json:"campName"`
	CampFees           Fee                `json:"campFees"`
	Location           string             `json:"location,omitempty"`
	ProfessionalName   string             `json:"professionalName,omitempty"`
	ParticipantName    string             `json:"participantName,omitempty"`
	ParticipantEmail   string             `json:"participantEmail"`
	Age                int                `json:"age,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	Gender             string             `json:"gender,omitempty"`
	EmergencyContact   string             `json:"emergencyContact,omitempty"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// Ref returns the value payments use to reference this registration.
func (r *Registration) Ref() RegistrationRef {
	return RegistrationRef(r.ID)
}

// PaymentSnapshot holds the registration values read just before the
// registration was marked paid.
type PaymentSnapshot struct {
	CampName           string
	CampFees           Fee
	PaymentStatus      PaymentStatus
	ConfirmationStatus ConfirmationStatus
}

// Payment is a ledger entry for a completed payment.
type Payment struct {
	ID                 string             `json:"_id"`
	RegistrationID     RegistrationRef    `json:"id"`
	CampName           string             `json:"campName"`
	CampFees           Fee                `json:"campFees"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus"`
	TransactionID      string             `json:"transactionId"`
	Email              string             `json:"email"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// User is a platform account, unique by email.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feedback is a participant's rating of a camp they attended.
type Feedback struct {
	ID               string    `json:"_id"`
	CampName         string    `json:"campName"`
	ParticipantName  string    `json:"participantName,omitempty"`
	ParticipantEmail string    `json:"participantEmail"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned where the API reports a condition rather than
// an error, e.g. an existing user or an unauthorized request.
type MessageResponse struct {
	Message string `json:"message"`
}

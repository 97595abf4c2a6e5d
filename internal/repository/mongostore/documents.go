// Package mongostore implements the stores on MongoDB, using the collection
// layout of the original deployment: camps, join, payment, users, feedback.
package mongostore

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

const (
	campsCollection    = "camps"
	joinCollection     = "join"
	paymentCollection  = "payment"
	usersCollection    = "users"
	feedbackCollection = "feedback"
)

type campDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CampName         string             `bson:"campName"`
	DateTime         string             `bson:"dateTime"`
	Location         string             `bson:"location"`
	Fees             float64            `bson:"fees"`
	Description      string             `bson:"description"`
	Image            string             `bson:"image"`
	ProfessionalName string             `bson:"professionalName"`
	ParticipantCount int                `bson:"participantCount"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

func (d campDoc) model() model.Camp {
	return model.Camp{
		ID:               d.ID.Hex(),
		CampName:         d.CampName,
		DateTime:         d.DateTime,
		Location:         d.Location,
		Fees:             d.Fees,
		Description:      d.Description,
		Image:            d.Image,
		ProfessionalName: d.ProfessionalName,
		ParticipantCount: d.ParticipantCount,
		CreatedAt:        d.CreatedAt,
	}
}

// joinDoc stores the camp reference under "id", as the original join
// documents do.
type joinDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	CampID             string             `bson:"id"`
	CampName           string             `bson:"campName"`
	CampFees           string             `bson:"campFees"`
	Location           string             `bson:"location,omitempty"`
	ProfessionalName   string             `bson:"professionalName,omitempty"`
	ParticipantName    string             `bson:"participantName,omitempty"`
	ParticipantEmail   string             `bson:"participantEmail"`
	Age                int                `bson:"age,omitempty"`
	Phone              string             `bson:"phone,omitempty"`
	Gender             string             `bson:"gender,omitempty"`
	EmergencyContact   string             `bson:"emergencyContact,omitempty"`
	PaymentStatus      string             `bson:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

func (d joinDoc) model() model.Registration {
	return model.Registration{
		ID:                 d.ID.Hex(),
		CampID:             d.CampID,
		CampName:           d.CampName,
		CampFees:           model.Fee(d.CampFees),
		Location:           d.Location,
		ProfessionalName:   d.ProfessionalName,
		ParticipantName:    d.ParticipantName,
		ParticipantEmail:   d.ParticipantEmail,
		Age:                d.Age,
		Phone:              d.Phone,
		Gender:             d.Gender,
		EmergencyContact:   d.EmergencyContact,
		PaymentStatus:      model.PaymentStatus(d.PaymentStatus),
		ConfirmationStatus: model.ConfirmationStatus(d.ConfirmationStatus),
		CreatedAt:          d.CreatedAt,
	}
}

// paymentDoc stores the registration reference under "id", matched by value.
type paymentDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	RegistrationID     string             `bson:"id"`
	CampName           string             `bson:"campName"`
	CampFees           string             `bson:"campFees"`
	PaymentStatus      string             `bson:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus"`
	TransactionID      string             `bson:"transactionId"`
	Email              string             `bson:"email"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

func (d paymentDoc) model() model.Payment {
	return model.Payment{
		ID:                 d.ID.Hex(),
		RegistrationID:     model.RegistrationRef(d.RegistrationID),
		CampName:           d.CampName,
		CampFees:           model.Fee(d.CampFees),
		PaymentStatus:      model.PaymentStatus(d.PaymentStatus),
		ConfirmationStatus: model.ConfirmationStatus(d.ConfirmationStatus),
		TransactionID:      d.TransactionID,
		Email:              d.Email,
		CreatedAt:          d.CreatedAt,
	}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty"`
	Role      string             `bson:"role,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type feedbackDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CampName         string             `bson:"campName"`
	ParticipantName  string             `bson:"participantName,omitempty"`
	ParticipantEmail string             `bson:"participantEmail"`
	Rating           int                `bson:"rating"`
	Comment          string             `bson:"comment,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// containsAny matches documents where any of fields contains search,
// case-insensitively. The search is quoted so it matches literally.
func containsAny(search string, fields ...string) bson.D {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.D{{Key: f, Value: re}})
	}
	return bson.D{{Key: "$or", Value: or}}
}

func insertedHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

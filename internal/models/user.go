package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is one document of the "users" collection. Clients and lawyers share
// the same shape; the lawyer fields are simply left empty for clients.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Picture             string             `bson:"picture" json:"picture"`
	Email               string             `bson:"email" json:"email"` // lookup key, not unique
	Role                string             `bson:"role" json:"role"`   // "client", "lawyer", ... not enforced
	GoogleCalendarToken string             `bson:"googleCalendarToken" json:"googleCalendarToken"`

	// Lawyer specific fields
	Specialization *string `bson:"specialization,omitempty" json:"specialization"`
	Experience     *int    `bson:"experience,omitempty" json:"experience"` // in years
	Location       string  `bson:"location,omitempty" json:"location"`

	CreatedAt Timestamp `bson:"createdAt" json:"createdAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LeadStatusNew = "New"

// Lead captures a consultation-booking form submission.
type Lead struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerName      string             `bson:"customerName" json:"customerName"`
	Email             string             `bson:"email" json:"email"`
	MobileNumber      string             `bson:"mobileNumber" json:"mobileNumber"`
	PreferredDate     time.Time          `bson:"preferredDate" json:"preferredDate"`
	TimeSlot          string             `bson:"timeSlot" json:"timeSlot"`
	ProjectType       string             `bson:"projectType,omitempty" json:"projectType,omitempty"`
	BudgetRange       string             `bson:"budgetRange,omitempty" json:"budgetRange,omitempty"`
	Status            string             `bson:"status" json:"status"`
	AdditionalMessage string             `bson:"additionalMessage,omitempty" json:"additionalMessage,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

const DefaultRequestMessage = "No message provided."

// BloodRequest - запрос крови, встроенный в документ донора
type BloodRequest struct {
	ID          string             `bson:"id" json:"id"`
	SenderID    primitive.ObjectID `bson:"senderId" json:"senderId"`
	SenderName  string             `bson:"senderName" json:"senderName"`
	SenderEmail string             `bson:"senderEmail,omitempty" json:"senderEmail,omitempty"`
	Message     string             `bson:"message" json:"message"`
	DistanceKm  float64            `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	RespondedAt *time.Time         `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

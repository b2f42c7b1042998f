package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BloodGroup - группа крови донора
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

// BloodGroups перечисляет все допустимые группы крови
var BloodGroups = []BloodGroup{
	BloodGroupAPositive,
	BloodGroupANegative,
	BloodGroupBPositive,
	BloodGroupBNegative,
	BloodGroupABPositive,
	BloodGroupABNegative,
	BloodGroupOPositive,
	BloodGroupONegative,
}

// IsValid проверяет, что группа крови входит в перечисление
func (b BloodGroup) IsValid() bool {
	for _, g := range BloodGroups {
		if g == b {
			return true
		}
	}
	return false
}

const RoleUser = "user"

// GeoPoint - GeoJSON точка, координаты хранятся как [lng, lat]
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

func (p *GeoPoint) Longitude() float64 {
	if p == nil || len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p *GeoPoint) Latitude() float64 {
	if p == nil || len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Donor - документ коллекции users
type Donor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string             `bson:"password,omitempty" json:"-"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	BloodGroup   BloodGroup         `bson:"bloodGroup" json:"bloodGroup"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	Age          int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Location     *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	IsGuest      bool               `bson:"isGuest" json:"isGuest"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	Requests     []BloodRequest     `bson:"requests,omitempty" json:"requests,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileCompletion - поля, которые гость заполняет при переходе в полноценные доноры
type ProfileCompletion struct {
	Email        string
	PasswordHash string
	Age          int
	Gender       string
	Address      string
	City         string
	Location     *GeoPoint
}

// NearbyQuery - параметры геопоиска доноров
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	BloodGroup   BloodGroup
	RadiusMeters float64
}

// DonorSearchResult - минимальная проекция донора в результатах поиска
type DonorSearchResult struct {
	FullName        string     `json:"fullName"`
	BloodGroup      BloodGroup `json:"bloodGroup"`
	City            string     `json:"city"`
	Age             int        `json:"age"`
	DistanceFromYou string     `json:"distanceFromYou"`
}

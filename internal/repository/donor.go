package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/blood_donation_system/internal/models"
	"github.com/shenikar/blood_donation_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type DonorRepository struct {
	c *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) service.DonorRepository {
	return &DonorRepository{
		c: db.Collection(usersCollection),
	}
}

// Create сохраняет нового донора и проставляет ему ID
func (r *DonorRepository) Create(ctx context.Context, donor *models.Donor) error {
	if donor.ID.IsZero() {
		donor.ID = primitive.NewObjectID()
	}
	if _, err := r.c.InsertOne(ctx, donor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create donor: %w", service.ErrDonorExists)
		}
		return fmt.Errorf("failed to create donor: %w", err)
	}
	return nil
}

// GetByID возвращает донора по ObjectID
func (r *DonorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donor, error) {
	var donor models.Donor
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&donor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("donor with id %s: %w", id.Hex(), service.ErrDonorNotFound)
		}
		return nil, fmt.Errorf("failed to get donor by id: %w", err)
	}
	return &donor, nil
}

// FindByEmailOrPhone ищет донора по email или телефону. Пустые значения не участвуют в поиске
func (r *DonorRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Donor, error) {
	or := bson.A{}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phone": phone})
	}
	if len(or) == 0 {
		return nil, fmt.Errorf("email or phone is required: %w", service.ErrDonorNotFound)
	}

	var donor models.Donor
	if err := r.c.FindOne(ctx, bson.M{"$or": or}).Decode(&donor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, service.ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to find donor by email or phone: %w", err)
	}
	return &donor, nil
}

// CompleteProfile переводит гостя в полноценные доноры
func (r *DonorRepository) CompleteProfile(ctx context.Context, id primitive.ObjectID, p models.ProfileCompletion) error {
	set := bson.M{
		"email":      p.Email,
		"password":   p.PasswordHash,
		"location":   p.Location,
		"isGuest":    false,
		"isVerified": true,
		"updatedAt":  time.Now().UTC(),
	}
	if p.Age > 0 {
		set["age"] = p.Age
	}
	if p.Gender != "" {
		set["gender"] = p.Gender
	}
	if p.Address != "" {
		set["address"] = p.Address
	}
	if p.City != "" {
		set["city"] = p.City
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id, "isGuest": true}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to complete profile: %w", service.ErrDonorExists)
		}
		return fmt.Errorf("failed to complete profile: %w", err)
	}

	// MatchedCount == 0 значит гостя с таким id не существует
	if res.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s: %w", id.Hex(), service.ErrDonorNotFound)
	}
	return nil
}

// FindNearby возвращает верифицированных доноров нужной группы в радиусе,
// отсортированных по возрастанию расстояния ($near по 2dsphere индексу)
func (r *DonorRepository) FindNearby(ctx context.Context, q models.NearbyQuery) ([]*models.Donor, error) {
	filter := bson.M{
		"bloodGroup": q.BloodGroup,
		"isVerified": true,
		"isGuest":    false,
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{q.Longitude, q.Latitude},
				},
				"$maxDistance": q.RadiusMeters,
			},
		},
	}
	opts := options.Find().SetProjection(bson.M{
		"fullName":   1,
		"bloodGroup": 1,
		"city":       1,
		"age":        1,
		"location":   1,
	})

	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby donors: %w", err)
	}
	defer cur.Close(ctx)

	donors := make([]*models.Donor, 0)
	for cur.Next(ctx) {
		donor := &models.Donor{}
		if err := cur.Decode(donor); err != nil {
			return nil, fmt.Errorf("failed to decode donor in FindNearby: %w", err)
		}
		donors = append(donors, donor)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error cursor iteration in FindNearby: %w", err)
	}
	return donors, nil
}

// AddRequest добавляет запрос крови в документ донора
func (r *DonorRepository) AddRequest(ctx context.Context, donorID primitive.ObjectID, req models.BloodRequest) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": donorID},
		bson.M{
			"$push": bson.M{"requests": req},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add blood request: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("donor with id %s: %w", donorID.Hex(), service.ErrDonorNotFound)
	}
	return nil
}

// UpdateRequestStatus меняет статус запроса, если он еще в статусе pending
func (r *DonorRepository) UpdateRequestStatus(ctx context.Context, donorID primitive.ObjectID, requestID, status string, at time.Time) error {
	filter := bson.M{
		"_id": donorID,
		"requests": bson.M{
			"$elemMatch": bson.M{"id": requestID, "status": models.RequestStatusPending},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"requests.$.status":      status,
			"requests.$.respondedAt": at,
			"updatedAt":              at,
		},
	}

	res, err := r.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update blood request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("pending request %s for donor %s: %w", requestID, donorID.Hex(), service.ErrRequestNotFound)
	}
	return nil
}

// CountByBloodGroup считает доступных для поиска доноров по группам крови
func (r *DonorRepository) CountByBloodGroup(ctx context.Context) (map[models.BloodGroup]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "isVerified", Value: true},
			{Key: "isGuest", Value: false},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$bloodGroup"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donor stats: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[models.BloodGroup]int)
	for cur.Next(ctx) {
		var row struct {
			BloodGroup models.BloodGroup `bson:"_id"`
			Count      int               `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode donor stats row: %w", err)
		}
		counts[row.BloodGroup] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error cursor iteration in CountByBloodGroup: %w", err)
	}
	return counts, nil
}

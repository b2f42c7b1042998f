package v1

import (
	"github.com/shenikar/blood_donation_system/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModelsToNearbyDonorsResponse преобразует результаты поиска в DTO для ответа
func ModelsToNearbyDonorsResponse(results []models.DonorSearchResult) *NearbyDonorsResponse {
	donors := make([]*DonorResponse, len(results))
	for i, r := range results {
		donors[i] = &DonorResponse{
			FullName:        r.FullName,
			BloodGroup:      string(r.BloodGroup),
			City:            r.City,
			Age:             r.Age,
			DistanceFromYou: r.DistanceFromYou,
		}
	}
	return &NearbyDonorsResponse{
		Count:  len(donors),
		Donors: donors,
	}
}

// DTOToDonorModel преобразует DTO регистрации в доменную модель
func DTOToDonorModel(dto any) *models.Donor {
	switch v := dto.(type) {
	case RegisterDonorRequest:
		return &models.Donor{
			FullName:   v.FullName,
			Email:      v.Email,
			Phone:      v.Phone,
			Age:        v.Age,
			Gender:     v.Gender,
			Address:    v.Address,
			City:       v.City,
			BloodGroup: models.BloodGroup(v.BloodGroup),
			Location:   coordinatesToGeoPoint(v.Coordinates),
		}
	case RegisterGuestRequest:
		return &models.Donor{
			FullName:   v.FullName,
			Phone:      v.Phone,
			Email:      v.Email,
			City:       v.City,
			BloodGroup: models.BloodGroup(v.BloodGroup),
		}
	}
	return nil
}

// DTOToProfileCompletion преобразует DTO завершения профиля в доменную модель
func DTOToProfileCompletion(dto CompleteProfileRequest) models.ProfileCompletion {
	return models.ProfileCompletion{
		Email:    dto.Email,
		Age:      dto.Age,
		Gender:   dto.Gender,
		Address:  dto.Address,
		City:     dto.City,
		Location: coordinatesToGeoPoint(dto.Coordinates),
	}
}

// ModelToBloodRequestResponse преобразует доменную модель запроса в DTO для ответа
func ModelToBloodRequestResponse(donorID primitive.ObjectID, req *models.BloodRequest) *BloodRequestResponse {
	return &BloodRequestResponse{
		ID:       req.ID,
		DonorID:  donorID.Hex(),
		SenderID: req.SenderID.Hex(),
		Message:  req.Message,
		Status:   req.Status,
	}
}

// ModelToStatsResponse преобразует статистику в DTO для ответа
func ModelToStatsResponse(stats *models.DonorStats) *StatsResponse {
	byGroup := make(map[string]int, len(stats.ByBloodGroup))
	for g, n := range stats.ByBloodGroup {
		byGroup[string(g)] = n
	}
	return &StatsResponse{
		Total:        stats.Total,
		ByBloodGroup: byGroup,
	}
}

func coordinatesToGeoPoint(c *CoordinatesRequest) *models.GeoPoint {
	if c == nil || c.Lat == nil || c.Long == nil {
		return nil
	}
	return models.NewGeoPoint(*c.Lat, *c.Long)
}

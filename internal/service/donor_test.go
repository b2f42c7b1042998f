package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shenikar/blood_donation_system/internal/config"
	"github.com/shenikar/blood_donation_system/internal/models"
	"github.com/shenikar/blood_donation_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	delhiLat = 28.6139
	delhiLng = 77.2090
)

// newTestDonorService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestDonorService(t *testing.T) (*donorService, *mocks.MockDonorRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDonorRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultSearchRadiusKm: 10,
		MaxSearchRadiusKm:     100,
	}

	service := NewDonorService(repoMock, logger, cfg)
	return service.(*donorService), repoMock
}

func TestFindNearbyDonors_NewDelhiScenario(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		FindNearby(ctx, models.NearbyQuery{
			Latitude:     delhiLat,
			Longitude:    delhiLng,
			BloodGroup:   models.BloodGroupONegative,
			RadiusMeters: 10000,
		}).
		Return([]*models.Donor{{
			ID:         primitive.NewObjectID(),
			FullName:   "Ravi Kumar",
			BloodGroup: models.BloodGroupONegative,
			City:       "New Delhi",
			Age:        29,
			Location:   models.NewGeoPoint(28.6200, 77.2100),
			IsVerified: true,
		}}, nil).
		Times(1)

	results, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupONegative, 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.DonorSearchResult{
		FullName:        "Ravi Kumar",
		BloodGroup:      models.BloodGroupONegative,
		City:            "New Delhi",
		Age:             29,
		DistanceFromYou: "0.69 km",
	}, results[0])
}

func TestFindNearbyDonors_DefaultRadius(t *testing.T) {
	for _, radius := range []float64{0, -5, math.NaN()} {
		service, repoMock := newTestDonorService(t)
		ctx := context.Background()

		repoMock.EXPECT().
			FindNearby(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q models.NearbyQuery) ([]*models.Donor, error) {
				assert.Equal(t, 10000.0, q.RadiusMeters)
				return nil, nil
			}).
			Times(1)

		_, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupAPositive, radius)
		assert.ErrorIs(t, err, ErrNoDonorsFound)
	}
}

func TestFindNearbyDonors_RadiusConvertedAndCapped(t *testing.T) {
	tests := []struct {
		name       string
		radiusKm   float64
		wantMeters float64
	}{
		{"custom radius", 2.5, 2500},
		{"at cap", 100, 100000},
		{"above cap", 5000, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock := newTestDonorService(t)
			ctx := context.Background()

			repoMock.EXPECT().
				FindNearby(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, q models.NearbyQuery) ([]*models.Donor, error) {
					assert.Equal(t, tt.wantMeters, q.RadiusMeters)
					return nil, nil
				}).
				Times(1)

			_, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupBPositive, tt.radiusKm)
			assert.ErrorIs(t, err, ErrNoDonorsFound)
		})
	}
}

func TestFindNearbyDonors_KeepsStoreOrder(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	donors := []*models.Donor{
		{FullName: "Nearest", BloodGroup: models.BloodGroupOPositive, Location: models.NewGeoPoint(28.6150, 77.2090)},
		{FullName: "Middle", BloodGroup: models.BloodGroupOPositive, Location: models.NewGeoPoint(28.6300, 77.2090)},
		{FullName: "Farthest", BloodGroup: models.BloodGroupOPositive, Location: models.NewGeoPoint(28.6800, 77.2090)},
	}
	repoMock.EXPECT().FindNearby(ctx, gomock.Any()).Return(donors, nil).Times(1)

	results, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupOPositive, 0)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Nearest", results[0].FullName)
	assert.Equal(t, "0.12 km", results[0].DistanceFromYou)
	assert.Equal(t, "Middle", results[1].FullName)
	assert.Equal(t, "1.79 km", results[1].DistanceFromYou)
	assert.Equal(t, "Farthest", results[2].FullName)
	assert.Equal(t, "7.35 km", results[2].DistanceFromYou)
}

func TestFindNearbyDonors_ValidationError(t *testing.T) {
	tests := []struct {
		name       string
		lat, lng   float64
		bloodGroup models.BloodGroup
		wantFields []string
	}{
		{"latitude out of range", 91, delhiLng, models.BloodGroupONegative, []string{"latitude"}},
		{"longitude out of range", delhiLat, -181, models.BloodGroupONegative, []string{"longitude"}},
		{"latitude NaN", math.NaN(), delhiLng, models.BloodGroupONegative, []string{"latitude"}},
		{"longitude infinite", delhiLat, math.Inf(1), models.BloodGroupONegative, []string{"longitude"}},
		{"missing blood group", delhiLat, delhiLng, "", []string{"bloodGroup"}},
		{"unknown blood group", delhiLat, delhiLng, "C+", []string{"bloodGroup"}},
		{"everything wrong", -100, 200, "X", []string{"latitude", "longitude", "bloodGroup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock := newTestDonorService(t)
			repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any()).Times(0) // Хранилище не должно вызываться

			results, err := service.FindNearbyDonors(context.Background(), tt.lat, tt.lng, tt.bloodGroup, 10)

			assert.Nil(t, results)
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestFindNearbyDonors_NoDonors(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindNearby(ctx, gomock.Any()).Return([]*models.Donor{}, nil).Times(1)

	results, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupABNegative, 10)

	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrNoDonorsFound)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestFindNearbyDonors_StoreUnavailable(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	dbError := errors.New("connection refused: mongo-1.internal:27017")

	repoMock.EXPECT().FindNearby(ctx, gomock.Any()).Return(nil, dbError).Times(1)

	results, err := service.FindNearbyDonors(ctx, delhiLat, delhiLng, models.BloodGroupABNegative, 10)

	assert.Nil(t, results)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, dbError)
	assert.NotContains(t, err.Error(), "mongo-1.internal")
}

func TestRegisterDonor_Success(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	newID := primitive.NewObjectID()

	donor := &models.Donor{
		FullName:   "Asha Singh",
		Email:      "asha@example.com",
		Phone:      "+911234567890",
		BloodGroup: models.BloodGroupOPositive,
		City:       "New Delhi",
		Age:        31,
		Location:   models.NewGeoPoint(delhiLat, delhiLng),
	}

	repoMock.EXPECT().FindByEmailOrPhone(ctx, "asha@example.com", "").Return(nil, ErrDonorNotFound).Times(1)
	repoMock.EXPECT().
		Create(ctx, donor).
		DoAndReturn(func(_ context.Context, d *models.Donor) error {
			d.ID = newID
			return nil
		}).
		Times(1)

	err := service.RegisterDonor(ctx, donor, "secret123")

	require.NoError(t, err)
	assert.Equal(t, newID, donor.ID)
	assert.True(t, donor.IsVerified)
	assert.False(t, donor.IsGuest)
	assert.Equal(t, models.RoleUser, donor.Role)
	assert.False(t, donor.CreatedAt.IsZero())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(donor.PasswordHash), []byte("secret123")))
}

func TestRegisterDonor_DuplicateEmail(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	donor := &models.Donor{
		FullName:   "Asha Singh",
		Email:      "asha@example.com",
		Phone:      "+911234567890",
		BloodGroup: models.BloodGroupOPositive,
		Location:   models.NewGeoPoint(delhiLat, delhiLng),
	}

	repoMock.EXPECT().
		FindByEmailOrPhone(ctx, "asha@example.com", "").
		Return(&models.Donor{ID: primitive.NewObjectID()}, nil).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.RegisterDonor(ctx, donor, "secret123")
	assert.ErrorIs(t, err, ErrDonorExists)
}

func TestRegisterDonor_DuplicateOnInsertRace(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	donor := &models.Donor{
		FullName:   "Asha Singh",
		Email:      "asha@example.com",
		Phone:      "+911234567890",
		BloodGroup: models.BloodGroupOPositive,
		Location:   models.NewGeoPoint(delhiLat, delhiLng),
	}

	repoMock.EXPECT().FindByEmailOrPhone(ctx, gomock.Any(), gomock.Any()).Return(nil, ErrDonorNotFound).Times(1)
	repoMock.EXPECT().Create(ctx, donor).Return(errors.Join(errors.New("E11000"), ErrDonorExists)).Times(1)

	err := service.RegisterDonor(ctx, donor, "secret123")
	assert.ErrorIs(t, err, ErrDonorExists)
}

func TestRegisterDonor_ValidationError(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	repoMock.EXPECT().FindByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.RegisterDonor(context.Background(), &models.Donor{
		FullName:   "No Coordinates",
		Email:      "x@example.com",
		Phone:      "1",
		BloodGroup: "Z",
	}, "123")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"password", "bloodGroup", "coordinates"}, verr.Fields)
}

func TestRegisterGuest_New(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	guest := &models.Donor{
		FullName:   "Guest",
		Phone:      "+919999999999",
		BloodGroup: models.BloodGroupANegative,
		Location:   models.NewGeoPoint(1, 1),
	}

	repoMock.EXPECT().FindByEmailOrPhone(ctx, "", "+919999999999").Return(nil, ErrDonorNotFound).Times(1)
	repoMock.EXPECT().Create(ctx, guest).Return(nil).Times(1)

	created, err := service.RegisterGuest(ctx, guest)

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, guest.IsGuest)
	assert.False(t, guest.IsVerified)
	assert.Nil(t, guest.Location)
}

func TestRegisterGuest_AlreadyExists(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	existing := &models.Donor{ID: primitive.NewObjectID(), FullName: "Guest", Phone: "+919999999999", IsGuest: true}

	repoMock.EXPECT().FindByEmailOrPhone(ctx, "g@example.com", "+919999999999").Return(existing, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	guest := &models.Donor{FullName: "Guest", Phone: "+919999999999", Email: "g@example.com", BloodGroup: models.BloodGroupANegative}
	created, err := service.RegisterGuest(ctx, guest)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, guest.ID)
}

func TestRegisterGuest_StoreError(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindByEmailOrPhone(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	_, err := service.RegisterGuest(ctx, &models.Donor{FullName: "G", Phone: "1", BloodGroup: models.BloodGroupOPositive})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCompleteGuestProfile_Success(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	profile := models.ProfileCompletion{
		Email:    "guest@example.com",
		City:     "Gurugram",
		Age:      40,
		Location: models.NewGeoPoint(28.4595, 77.0266),
	}

	repoMock.EXPECT().GetByID(ctx, id).Return(&models.Donor{ID: id, IsGuest: true}, nil).Times(1)
	repoMock.EXPECT().
		CompleteProfile(ctx, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, p models.ProfileCompletion) error {
			assert.Equal(t, "guest@example.com", p.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("secret123")))
			assert.Equal(t, 28.4595, p.Location.Latitude())
			return nil
		}).
		Times(1)

	require.NoError(t, service.CompleteGuestProfile(ctx, id, profile, "secret123"))
}

func TestCompleteGuestProfile_NotGuest(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repoMock.EXPECT().GetByID(ctx, id).Return(&models.Donor{ID: id, IsGuest: false}, nil).Times(1)
	repoMock.EXPECT().CompleteProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.CompleteGuestProfile(ctx, id, models.ProfileCompletion{
		Email:    "guest@example.com",
		Location: models.NewGeoPoint(1, 1),
	}, "secret123")
	assert.ErrorIs(t, err, ErrNotGuest)
}

func TestCompleteGuestProfile_NotFound(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repoMock.EXPECT().GetByID(ctx, id).Return(nil, ErrDonorNotFound).Times(1)

	err := service.CompleteGuestProfile(ctx, id, models.ProfileCompletion{
		Email:    "guest@example.com",
		Location: models.NewGeoPoint(1, 1),
	}, "secret123")
	assert.ErrorIs(t, err, ErrDonorNotFound)
}

func TestGetStats_FillsAllGroups(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountByBloodGroup(ctx).
		Return(map[models.BloodGroup]int{
			models.BloodGroupOPositive: 5,
			models.BloodGroupABNegative: 1,
		}, nil).
		Times(1)

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Len(t, stats.ByBloodGroup, 8)
	assert.Equal(t, 5, stats.ByBloodGroup[models.BloodGroupOPositive])
	assert.Equal(t, 0, stats.ByBloodGroup[models.BloodGroupANegative])
}

func TestGetStats_StoreError(t *testing.T) {
	service, repoMock := newTestDonorService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountByBloodGroup(ctx).Return(nil, errors.New("boom")).Times(1)

	stats, err := service.GetStats(ctx)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

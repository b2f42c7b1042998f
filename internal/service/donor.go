package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/blood_donation_system/internal/config"
	"github.com/shenikar/blood_donation_system/internal/models"
	"github.com/shenikar/blood_donation_system/pkg/geo"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=donor.go -destination=mocks/mock_donor.go -package=mocks

// DonorRepository определяет контракт для работы с коллекцией доноров
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donor, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Donor, error)
	CompleteProfile(ctx context.Context, id primitive.ObjectID, p models.ProfileCompletion) error
	FindNearby(ctx context.Context, q models.NearbyQuery) ([]*models.Donor, error)
	AddRequest(ctx context.Context, donorID primitive.ObjectID, req models.BloodRequest) error
	UpdateRequestStatus(ctx context.Context, donorID primitive.ObjectID, requestID, status string, at time.Time) error
	CountByBloodGroup(ctx context.Context) (map[models.BloodGroup]int, error)
}

// DonorService определяет контракт бизнес-логики доноров
type DonorService interface {
	FindNearbyDonors(ctx context.Context, lat, lng float64, bloodGroup models.BloodGroup, radiusKm float64) ([]models.DonorSearchResult, error)
	RegisterDonor(ctx context.Context, donor *models.Donor, password string) error
	RegisterGuest(ctx context.Context, guest *models.Donor) (created bool, err error)
	CompleteGuestProfile(ctx context.Context, id primitive.ObjectID, profile models.ProfileCompletion, password string) error
	GetStats(ctx context.Context) (*models.DonorStats, error)
}

type donorService struct {
	repo   DonorRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewDonorService(repo DonorRepository, logger *logrus.Logger, cfg *config.Config) DonorService {
	return &donorService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// searchRadiusKm применяет радиус по умолчанию и ограничение сверху
func (s *donorService) searchRadiusKm(radiusKm float64) float64 {
	if !(radiusKm > 0) {
		return s.cfg.DefaultSearchRadiusKm
	}
	if s.cfg.MaxSearchRadiusKm > 0 && radiusKm > s.cfg.MaxSearchRadiusKm {
		return s.cfg.MaxSearchRadiusKm
	}
	return radiusKm
}

// FindNearbyDonors ищет доноров нужной группы крови рядом с искателем
func (s *donorService) FindNearbyDonors(ctx context.Context, lat, lng float64, bloodGroup models.BloodGroup, radiusKm float64) ([]models.DonorSearchResult, error) {
	verr := &ValidationError{}
	if !geo.ValidLatitude(lat) {
		verr.add("latitude")
	}
	if !geo.ValidLongitude(lng) {
		verr.add("longitude")
	}
	if !bloodGroup.IsValid() {
		verr.add("bloodGroup")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	radiusKm = s.searchRadiusKm(radiusKm)
	log := s.logger.WithFields(logrus.Fields{
		"service":     "donor",
		"method":      "FindNearbyDonors",
		"blood_group": bloodGroup,
		"radius_km":   radiusKm,
	})
	log.Info("Searching nearby donors")

	donors, err := s.repo.FindNearby(ctx, models.NearbyQuery{
		Latitude:     lat,
		Longitude:    lng,
		BloodGroup:   bloodGroup,
		RadiusMeters: radiusKm * 1000,
	})
	if err != nil {
		log.WithError(err).Error("Failed to find nearby donors in repository")
		return nil, fmt.Errorf("service: could not find nearby donors: %w", ErrStoreUnavailable)
	}

	if len(donors) == 0 {
		log.Info("No donors found nearby")
		return nil, ErrNoDonorsFound
	}

	results := make([]models.DonorSearchResult, 0, len(donors))
	for _, d := range donors {
		dist := geo.HaversineKm(lat, lng, d.Location.Latitude(), d.Location.Longitude())
		results = append(results, models.DonorSearchResult{
			FullName:        d.FullName,
			BloodGroup:      d.BloodGroup,
			City:            d.City,
			Age:             d.Age,
			DistanceFromYou: geo.FormatKm(dist),
		})
	}

	log.WithField("count", len(results)).Info("Nearby donors found")
	return results, nil
}

// RegisterDonor регистрирует полноценного донора
func (s *donorService) RegisterDonor(ctx context.Context, donor *models.Donor, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "donor",
		"method":  "RegisterDonor",
	})

	verr := &ValidationError{}
	if donor.FullName == "" {
		verr.add("fullName")
	}
	if donor.Phone == "" {
		verr.add("phone")
	}
	if donor.Email == "" {
		verr.add("email")
	}
	if len(password) < 6 {
		verr.add("password")
	}
	if !donor.BloodGroup.IsValid() {
		verr.add("bloodGroup")
	}
	if donor.Location == nil || !geo.ValidLatitude(donor.Location.Latitude()) || !geo.ValidLongitude(donor.Location.Longitude()) {
		verr.add("coordinates")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	log.Info("Attempting to register a new donor")

	existing, err := s.repo.FindByEmailOrPhone(ctx, donor.Email, "")
	if err != nil && !errors.Is(err, ErrDonorNotFound) {
		log.WithError(err).Error("Failed to look up donor by email")
		return fmt.Errorf("service: could not register donor: %w", ErrStoreUnavailable)
	}
	if existing != nil {
		log.Warn("Donor with this email already exists")
		return ErrDonorExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}

	now := time.Now().UTC()
	donor.PasswordHash = string(hash)
	donor.Role = models.RoleUser
	donor.IsGuest = false
	donor.IsVerified = true
	donor.CreatedAt = now
	donor.UpdatedAt = now

	if err := s.repo.Create(ctx, donor); err != nil {
		if errors.Is(err, ErrDonorExists) {
			log.Warn("Donor with this email already exists")
			return ErrDonorExists
		}
		log.WithError(err).Error("Failed to create donor in repository")
		return fmt.Errorf("service: could not register donor: %w", ErrStoreUnavailable)
	}

	log.WithField("donor_id", donor.ID.Hex()).Info("Donor registered successfully")
	return nil
}

// RegisterGuest регистрирует экстренного гостя. Если гость с таким телефоном
// или email уже есть, возвращает его ID и created=false
func (s *donorService) RegisterGuest(ctx context.Context, guest *models.Donor) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "donor",
		"method":  "RegisterGuest",
	})

	verr := &ValidationError{}
	if guest.FullName == "" {
		verr.add("fullName")
	}
	if guest.Phone == "" {
		verr.add("phone")
	}
	if !guest.BloodGroup.IsValid() {
		verr.add("bloodGroup")
	}
	if err := verr.orNil(); err != nil {
		return false, err
	}

	existing, err := s.repo.FindByEmailOrPhone(ctx, guest.Email, guest.Phone)
	if err != nil && !errors.Is(err, ErrDonorNotFound) {
		log.WithError(err).Error("Failed to look up guest")
		return false, fmt.Errorf("service: could not register guest: %w", ErrStoreUnavailable)
	}
	if existing != nil {
		log.WithField("donor_id", existing.ID.Hex()).Info("Guest already exists")
		*guest = *existing
		return false, nil
	}

	now := time.Now().UTC()
	guest.Role = models.RoleUser
	guest.IsGuest = true
	guest.IsVerified = false
	guest.Location = nil
	guest.CreatedAt = now
	guest.UpdatedAt = now

	if err := s.repo.Create(ctx, guest); err != nil {
		log.WithError(err).Error("Failed to create guest in repository")
		return false, fmt.Errorf("service: could not register guest: %w", ErrStoreUnavailable)
	}

	log.WithField("donor_id", guest.ID.Hex()).Info("Guest registered successfully")
	return true, nil
}

// CompleteGuestProfile превращает гостя в верифицированного донора
func (s *donorService) CompleteGuestProfile(ctx context.Context, id primitive.ObjectID, profile models.ProfileCompletion, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "donor",
		"method":   "CompleteGuestProfile",
		"donor_id": id.Hex(),
	})

	verr := &ValidationError{}
	if profile.Email == "" {
		verr.add("email")
	}
	if len(password) < 6 {
		verr.add("password")
	}
	if profile.Location == nil || !geo.ValidLatitude(profile.Location.Latitude()) || !geo.ValidLongitude(profile.Location.Longitude()) {
		verr.add("coordinates")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	log.Info("Attempting to complete guest profile")
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDonorNotFound) {
			log.Warn("Attempted to complete a non-existent guest")
			return ErrDonorNotFound
		}
		log.WithError(err).Error("Failed to get donor in repository")
		return fmt.Errorf("service: could not complete profile: %w", ErrStoreUnavailable)
	}
	if !existing.IsGuest {
		log.Warn("Attempted to complete profile of a registered donor")
		return ErrNotGuest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	profile.PasswordHash = string(hash)

	if err := s.repo.CompleteProfile(ctx, id, profile); err != nil {
		switch {
		case errors.Is(err, ErrDonorNotFound):
			// гость мог быть переведен параллельным запросом
			return ErrNotGuest
		case errors.Is(err, ErrDonorExists):
			return ErrDonorExists
		}
		log.WithError(err).Error("Failed to complete profile in repository")
		return fmt.Errorf("service: could not complete profile: %w", ErrStoreUnavailable)
	}

	log.Info("Guest profile completed successfully")
	return nil
}

// GetStats возвращает количество доступных доноров по всем группам крови
func (s *donorService) GetStats(ctx context.Context) (*models.DonorStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "donor",
		"method":  "GetStats",
	})

	counts, err := s.repo.CountByBloodGroup(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count donors in repository")
		return nil, fmt.Errorf("service: could not get stats: %w", ErrStoreUnavailable)
	}

	stats := &models.DonorStats{ByBloodGroup: make(map[models.BloodGroup]int, len(models.BloodGroups))}
	for _, g := range models.BloodGroups {
		stats.ByBloodGroup[g] = counts[g]
		stats.Total += counts[g]
	}
	return stats, nil
}

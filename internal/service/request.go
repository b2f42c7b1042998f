package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/blood_donation_system/internal/config"
	"github.com/shenikar/blood_donation_system/internal/models"
	"github.com/shenikar/blood_donation_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=request.go -destination=mocks/mock_request.go -package=mocks

// RequestService определяет контракт для запросов крови между искателем и донором
type RequestService interface {
	SendRequest(ctx context.Context, senderID, donorID primitive.ObjectID, message string, distanceKm float64) (*models.BloodRequest, error)
	RespondToRequest(ctx context.Context, donorID primitive.ObjectID, requestID, status string) error
}

type requestService struct {
	repo      DonorRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
}

func NewRequestService(repo DonorRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) RequestService {
	return &requestService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// SendRequest сохраняет запрос в документе донора и публикует уведомление
func (s *requestService) SendRequest(ctx context.Context, senderID, donorID primitive.ObjectID, message string, distanceKm float64) (*models.BloodRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "request",
		"method":    "SendRequest",
		"sender_id": senderID.Hex(),
		"donor_id":  donorID.Hex(),
	})

	if senderID == donorID {
		return nil, &ValidationError{Fields: []string{"donorId"}}
	}

	sender, err := s.loadDonor(ctx, senderID)
	if err != nil {
		log.WithError(err).Warn("Failed to load sender")
		return nil, err
	}
	donor, err := s.loadDonor(ctx, donorID)
	if err != nil {
		log.WithError(err).Warn("Failed to load donor")
		return nil, err
	}

	if message == "" {
		message = models.DefaultRequestMessage
	}
	req := models.BloodRequest{
		ID:          uuid.NewString(),
		SenderID:    sender.ID,
		SenderName:  sender.FullName,
		SenderEmail: sender.Email,
		Message:     message,
		DistanceKm:  distanceKm,
		Status:      models.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.AddRequest(ctx, donor.ID, req); err != nil {
		if errors.Is(err, ErrDonorNotFound) {
			return nil, ErrDonorNotFound
		}
		log.WithError(err).Error("Failed to add request in repository")
		return nil, fmt.Errorf("service: could not send request: %w", ErrStoreUnavailable)
	}

	event := webhook.BloodRequestEvent{
		EventID:        uuid.NewString(),
		RequestID:      req.ID,
		DonorID:        donor.ID.Hex(),
		DonorName:      donor.FullName,
		DonorEmail:     donor.Email,
		SenderID:       sender.ID.Hex(),
		SenderName:     sender.FullName,
		SenderEmail:    sender.Email,
		SenderVerified: sender.IsVerified,
		Message:        req.Message,
		DistanceKm:     distanceKm,
		AcceptURL:      s.responseURL(donor.ID, req.ID, "accept"),
		RejectURL:      s.responseURL(donor.ID, req.ID, "reject"),
		Timestamp:      req.CreatedAt,
	}
	// Запрос уже сохранен, ошибка публикации не отменяет его
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish blood request event")
	}

	log.WithField("request_id", req.ID).Info("Blood request sent successfully")
	return &req, nil
}

// RespondToRequest принимает или отклоняет ожидающий запрос
func (s *requestService) RespondToRequest(ctx context.Context, donorID primitive.ObjectID, requestID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "RespondToRequest",
		"donor_id":   donorID.Hex(),
		"request_id": requestID,
		"status":     status,
	})

	verr := &ValidationError{}
	if requestID == "" {
		verr.add("requestId")
	}
	if status != models.RequestStatusAccepted && status != models.RequestStatusRejected {
		verr.add("status")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	if err := s.repo.UpdateRequestStatus(ctx, donorID, requestID, status, time.Now().UTC()); err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			log.Warn("Pending request not found")
			return ErrRequestNotFound
		}
		log.WithError(err).Error("Failed to update request status in repository")
		return fmt.Errorf("service: could not respond to request: %w", ErrStoreUnavailable)
	}

	log.Info("Blood request answered")
	return nil
}

func (s *requestService) loadDonor(ctx context.Context, id primitive.ObjectID) (*models.Donor, error) {
	donor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDonorNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("service: could not load donor: %w", ErrStoreUnavailable)
	}
	return donor, nil
}

func (s *requestService) responseURL(donorID primitive.ObjectID, requestID, action string) string {
	return fmt.Sprintf("%s/request-response/%s/%s/%s", s.cfg.FrontendURL, donorID.Hex(), requestID, action)
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// @Summary Register a donor
// @Description Register a verified donor with location. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body RegisterDonorRequest true "Donor registration request"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "User already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) registerDonor(c *gin.Context) {
	var input RegisterDonorRequest
	log := h.logger.WithField("method", "registerDonor")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToDonorModel(input)
	if err := h.donorService.RegisterDonor(c.Request.Context(), model, input.Password); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "User created successfully", UserID: model.ID.Hex()})
}

// @Summary Register an emergency guest
// @Description Register a guest with minimal details. Returns the existing user when the phone or email is already known. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param guest body RegisterGuestRequest true "Guest registration request"
// @Success 200 {object} RegisterResponse "Guest already exists"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/emergency [post]
func (h *Handler) registerGuest(c *gin.Context) {
	var input RegisterGuestRequest
	log := h.logger.WithField("method", "registerGuest")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToDonorModel(input)
	created, err := h.donorService.RegisterGuest(c.Request.Context(), model)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, RegisterResponse{Message: "Guest already exists", UserID: model.ID.Hex()})
		return
	}
	c.JSON(http.StatusCreated, RegisterResponse{Message: "Guest added successfully", UserID: model.ID.Hex()})
}

// @Summary Complete a guest profile
// @Description Turn an emergency guest into a verified donor. Requires API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param profile body CompleteProfileRequest true "Profile completion request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid user ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "User is not a guest or email taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [patch]
func (h *Handler) completeGuestProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "completeGuestProfile").WithField("id", id.Hex())

	var input CompleteProfileRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.donorService.CompleteGuestProfile(c.Request.Context(), id, DTOToProfileCompletion(input), input.Password); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

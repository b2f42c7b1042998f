package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// @Summary Send a blood request
// @Description Store a pending blood request on the donor and notify them. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SendRequestRequest true "Blood request"
// @Success 200 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) sendRequest(c *gin.Context) {
	var input SendRequestRequest
	log := h.logger.WithField("method", "sendRequest")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	// Формат уже проверен тегом mongodb
	senderID, _ := primitive.ObjectIDFromHex(input.SenderID)
	donorID, _ := primitive.ObjectIDFromHex(input.DonorID)

	req, err := h.requestService.SendRequest(c.Request.Context(), senderID, donorID, input.Message, input.Distance)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToBloodRequestResponse(donorID, req))
}

// @Summary Respond to a blood request
// @Description Accept or reject a pending blood request. Requires API key.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param donorId path string true "Donor ID"
// @Param requestId path string true "Request ID"
// @Param response body RespondRequestRequest true "Response"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid donor ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Pending request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{donorId}/{requestId} [patch]
func (h *Handler) respondToRequest(c *gin.Context) {
	donorID, err := primitive.ObjectIDFromHex(c.Param("donorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donor ID"})
		return
	}
	requestID := c.Param("requestId")
	log := h.logger.WithField("method", "respondToRequest").WithField("donor_id", donorID.Hex()).WithField("request_id", requestID)

	var input RespondRequestRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.requestService.RespondToRequest(c.Request.Context(), donorID, requestID, input.Status); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

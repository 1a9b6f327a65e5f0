package api

import (
	"encoding/json"
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/validator"
	"github.com/rs/zerolog/log"
)

//	@Summary		Get a user's notification preferences
//	@Tags			preferences
//	@Produce		json
//	@Security		accessToken
//	@Param			user_id	path		string	true	"User ID"
//	@Success		200		{object}	SuccessResponse{data=db.UserNotificationPreference}
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/preferences/{user_id} [get]
func (server *Server) getPreferences(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	
	preferences, err := server.dbStore.GetUserNotificationPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Preferences not found"))
			return
		}
		
		log.Err(err).Str("user_id", userID).Msg("failed to get preferences")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve preferences"))
		return
	}
	
	ctx.JSON(http.StatusOK, successResponse(preferences))
}

// Absent fields keep their stored value (or the column default on create).
type updatePreferencesRequest struct {
	EmailEnabled *bool           `json:"email_enabled" example:"true"`
	SmsEnabled   *bool           `json:"sms_enabled" example:"false"`
	PushEnabled  *bool           `json:"push_enabled" example:"true"`
	Frequency    *string         `json:"frequency" enums:"realtime,hourly,daily,weekly" example:"daily"`
	Preferences  json.RawMessage `json:"preferences" swaggertype:"object"`
}

func validateUpdatePreferencesRequest(req *updatePreferencesRequest) (violations []*FieldViolation) {
	if req.Frequency != nil {
		if err := validator.ValidateFrequency(*req.Frequency); err != nil {
			violations = append(violations, fieldViolation("frequency", err))
		}
	}
	
	if len(req.Preferences) > 0 && !isJSONObjectOrNull(req.Preferences) {
		violations = append(violations, fieldViolation("preferences", errors.New("must be a JSON object")))
	}
	
	return violations
}

//	@Summary		Create or update a user's notification preferences
//	@Description	Only the fields present in the body are changed
//	@Tags			preferences
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			user_id	path		string						true	"User ID"
//	@Param			request	body		updatePreferencesRequest	true	"Preference fields"
//	@Success		200		{object}	SuccessResponse{data=db.UserNotificationPreference}
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/preferences/{user_id} [put]
func (server *Server) updatePreferences(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	req := new(updatePreferencesRequest)
	
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(CodeValidation, "Invalid JSON body"))
		return
	}
	
	violations := validateUpdatePreferencesRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}
	
	arg := db.UpsertUserNotificationPreferencesParams{
		ID:           uuid.New(),
		UserID:       userID,
		EmailEnabled: req.EmailEnabled,
		SmsEnabled:   req.SmsEnabled,
		PushEnabled:  req.PushEnabled,
		Frequency:    req.Frequency,
	}
	if len(req.Preferences) > 0 && string(req.Preferences) != "null" {
		arg.Preferences = req.Preferences
	}
	
	preferences, err := server.dbStore.UpsertUserNotificationPreferences(ctx, arg)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to update preferences")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to update preferences"))
		return
	}
	
	log.Info().Str("user_id", userID).Msg("preferences updated")
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true, Data: preferences, Message: "Preferences updated successfully"})
}

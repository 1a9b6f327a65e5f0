package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/katatrina/notification-service/internal/validator"
	"github.com/rs/zerolog/log"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type sendNotificationRequest struct {
	UserID  string          `json:"user_id" example:"3f6c1c2e-8d2a-4b8e-9a57-1b2c3d4e5f60"`
	Type    string          `json:"type" example:"welcome"`
	Channel string          `json:"channel" example:"email"`
	Subject *string         `json:"subject" example:"Welcome!"`
	Message string          `json:"message" example:"Thanks for signing up."`
	Data    json.RawMessage `json:"data" swaggertype:"object"`
}

func validateSendNotificationRequest(req *sendNotificationRequest) (violations []*FieldViolation) {
	if err := validator.ValidateRequiredText(req.UserID, 255); err != nil {
		violations = append(violations, fieldViolation("user_id", err))
	}
	
	if err := validator.ValidateRequiredText(req.Type, 100); err != nil {
		violations = append(violations, fieldViolation("type", err))
	}
	
	if err := validator.ValidateRequiredText(req.Channel, 50); err != nil {
		violations = append(violations, fieldViolation("channel", err))
	}
	
	if err := validator.ValidateRequiredText(req.Message, 10000); err != nil {
		violations = append(violations, fieldViolation("message", err))
	}
	
	if req.Subject != nil {
		if err := validator.ValidateString(*req.Subject, 0, 255); err != nil {
			violations = append(violations, fieldViolation("subject", err))
		}
	}
	
	if len(req.Data) > 0 && !isJSONObjectOrNull(req.Data) {
		violations = append(violations, fieldViolation("data", errors.New("must be a JSON object")))
	}
	
	return violations
}

func isJSONObjectOrNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	
	var obj map[string]any
	return json.Unmarshal(trimmed, &obj) == nil
}

// normalizedData stores absent or null data as an empty object.
func normalizedData(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("{}")
	}
	
	return raw
}

// sendNotification persists a pending notification and schedules its first delivery attempt.
//
//	@Summary		Submit a notification
//	@Description	Persist a pending notification and queue its first delivery attempt
//	@Tags			notifications
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		sendNotificationRequest	true	"Notification"
//	@Success		201		{object}	SuccessResponse{data=db.Notification}
//	@Failure		400		{object}	ErrorResponse	"Missing or invalid fields"
//	@Failure		422		{object}	ErrorResponse	"Channel disabled by user preferences"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/notifications/send [post]
func (server *Server) sendNotification(ctx *gin.Context) {
	req := new(sendNotificationRequest)
	
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(CodeValidation, "Invalid JSON body"))
		return
	}
	
	violations := validateSendNotificationRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}
	
	preferences, err := server.dbStore.GetUserNotificationPreferences(ctx, req.UserID)
	switch {
	case err == nil:
		if notification.IsKnownChannel(req.Channel) && !preferences.ChannelEnabled(req.Channel) {
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(CodeChannelDisabled, "Channel "+req.Channel+" is disabled for this user"))
			return
		}
	case errors.Is(err, db.ErrRecordNotFound):
	default:
		log.Err(err).Str("user_id", req.UserID).Msg("failed to get notification preferences")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to send notification"))
		return
	}
	
	created, err := server.dbStore.CreateNotification(ctx, db.CreateNotificationParams{
		ID:      uuid.New(),
		UserID:  req.UserID,
		Type:    req.Type,
		Channel: req.Channel,
		Subject: req.Subject,
		Message: req.Message,
		Data:    normalizedData(req.Data),
	})
	if err != nil {
		log.Err(err).Msg("failed to create notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to send notification"))
		return
	}
	
	// Enqueued only after commit so a worker never loads a row that is not
	// visible yet. A lost enqueue is picked up by the stale-pending tracker.
	message := "Notification queued successfully"
	if err = server.taskQueue.EnqueueNotification(ctx, created.ID, 0, 0); err != nil {
		log.Err(err).Str("notification_id", created.ID.String()).Msg("failed to enqueue notification")
		message = "Notification accepted, delivery will be scheduled shortly"
	} else {
		log.Info().Str("notification_id", created.ID.String()).Str("channel", created.Channel).Msg("notification queued")
	}
	
	ctx.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: created, Message: message})
}

func parseNotificationID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		// A malformed id cannot exist.
		ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Notification not found"))
		return uuid.Nil, false
	}
	
	return id, true
}

//	@Summary		Get a notification
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Notification ID"
//	@Success		200	{object}	SuccessResponse{data=db.Notification}
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/notifications/{id} [get]
func (server *Server) getNotification(ctx *gin.Context) {
	id, ok := parseNotificationID(ctx)
	if !ok {
		return
	}
	
	n, err := server.dbStore.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Notification not found"))
			return
		}
		
		log.Err(err).Str("notification_id", id.String()).Msg("failed to get notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve notification"))
		return
	}
	
	ctx.JSON(http.StatusOK, successResponse(n))
}

//	@Summary		Mark a notification as read
//	@Description	Sets read_at the first time; later calls keep the original timestamp
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Notification ID"
//	@Success		200	{object}	SuccessResponse{data=db.Notification}
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/notifications/{id}/read [patch]
func (server *Server) markNotificationRead(ctx *gin.Context) {
	id, ok := parseNotificationID(ctx)
	if !ok {
		return
	}
	
	n, err := server.dbStore.MarkNotificationRead(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Notification not found"))
			return
		}
		
		log.Err(err).Str("notification_id", id.String()).Msg("failed to mark notification read")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to update notification"))
		return
	}
	
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true, Data: n, Message: "Notification marked as read"})
}

// pageParams reads page and limit the lenient way: unparsable values fall
// back to defaults and limit is capped.
func pageParams(ctx *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	
	limit, err = strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	
	return page, limit
}

// pageOffset reports false when the page starts beyond what the store can
// address; such pages are empty.
func pageOffset(page, limit int) (int32, bool) {
	if page-1 > math.MaxInt32/limit {
		return 0, false
	}
	return int32((page - 1) * limit), true
}

func newPagination(page, limit int, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

//	@Summary		List a user's notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			user_id	path		string	true	"User ID"
//	@Param			page	query		int		false	"Page number"		default(1)
//	@Param			limit	query		int		false	"Items per page"	default(10)	maximum(100)
//	@Success		200		{object}	PaginatedResponse{data=[]db.Notification}
//	@Failure		500		{object}	ErrorResponse
//	@Router			/notifications/user/{user_id} [get]
func (server *Server) listUserNotifications(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	page, limit := pageParams(ctx)
	
	notifications := []db.Notification{}
	if offset, ok := pageOffset(page, limit); ok {
		var err error
		notifications, err = server.dbStore.ListUserNotifications(ctx, db.ListUserNotificationsParams{
			UserID: userID,
			Limit:  int32(limit),
			Offset: offset,
		})
		if err != nil {
			log.Err(err).Str("user_id", userID).Msg("failed to list user notifications")
			ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve notifications"))
			return
		}
	}
	
	total, err := server.dbStore.CountUserNotifications(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to count user notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve notifications"))
		return
	}
	
	ctx.JSON(http.StatusOK, PaginatedResponse{
		Success:    true,
		Data:       notifications,
		Pagination: newPagination(page, limit, total),
	})
}

//	@Summary		List all notifications
//	@Tags			notifications
//	@Produce		json
//	@Security		accessToken
//	@Param			page	query		int	false	"Page number"		default(1)
//	@Param			limit	query		int	false	"Items per page"	default(10)	maximum(100)
//	@Success		200		{object}	PaginatedResponse{data=[]db.Notification}
//	@Failure		500		{object}	ErrorResponse
//	@Router			/notifications [get]
func (server *Server) listNotifications(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	
	notifications := []db.Notification{}
	if offset, ok := pageOffset(page, limit); ok {
		var err error
		notifications, err = server.dbStore.ListNotifications(ctx, db.ListNotificationsParams{
			Limit:  int32(limit),
			Offset: offset,
		})
		if err != nil {
			log.Err(err).Msg("failed to list notifications")
			ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve notifications"))
			return
		}
	}
	
	total, err := server.dbStore.CountNotifications(ctx)
	if err != nil {
		log.Err(err).Msg("failed to count notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve notifications"))
		return
	}
	
	ctx.JSON(http.StatusOK, PaginatedResponse{
		Success:    true,
		Data:       notifications,
		Pagination: newPagination(page, limit, total),
	})
}

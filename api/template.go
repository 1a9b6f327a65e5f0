package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

//	@Summary		List active templates
//	@Tags			templates
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{object}	SuccessResponse{data=[]db.NotificationTemplate}
//	@Failure		500	{object}	ErrorResponse
//	@Router			/templates [get]
func (server *Server) listTemplates(ctx *gin.Context) {
	templates, err := server.dbStore.ListActiveNotificationTemplates(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list templates")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve templates"))
		return
	}
	
	ctx.JSON(http.StatusOK, successResponse(templates))
}

//	@Summary		Get a template
//	@Description	Inactive templates are returned too
//	@Tags			templates
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Template ID"
//	@Success		200	{object}	SuccessResponse{data=db.NotificationTemplate}
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/templates/{id} [get]
func (server *Server) getTemplate(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Template not found"))
		return
	}
	
	template, err := server.dbStore.GetNotificationTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(CodeNotFound, "Template not found"))
			return
		}
		
		log.Err(err).Str("template_id", id.String()).Msg("failed to get template")
		ctx.JSON(http.StatusInternalServerError, errorResponse(CodeInternal, "Failed to retrieve template"))
		return
	}
	
	ctx.JSON(http.StatusOK, successResponse(template))
}

package api

import (
	"net/http"
	"strings"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/notification-service/internal/token"
	"github.com/rs/zerolog/log"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "Bearer"
	authorizationPayloadKey = "authPayload"
)

// authMiddleware authenticates the caller.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			abortWithError(ctx, http.StatusUnauthorized, CodeUnauthorized, "authorization header is not provided")
			return
		}
		
		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			abortWithError(ctx, http.StatusUnauthorized, CodeUnauthorized, "invalid authorization header format")
			return
		}
		
		authorizationHeaderType := fields[0]
		if !strings.EqualFold(authorizationHeaderType, authorizationTypeBearer) {
			abortWithError(ctx, http.StatusUnauthorized, CodeUnauthorized, "unsupported authorization header type")
			return
		}
		
		accessToken := fields[1]
		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			abortWithError(ctx, http.StatusUnauthorized, CodeUnauthorized, err.Error())
			return
		}
		
		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		
		status := ctx.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		
		event.Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("http request")
	}
}

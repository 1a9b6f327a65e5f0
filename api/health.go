package api

import (
	"context"
	"net/http"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status  string            `json:"status" example:"healthy"`
	Service string            `json:"service" example:"notification-service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

const serviceName = "notification-service"

//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func (server *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, healthResponse{Status: "healthy", Service: serviceName})
}

//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health/live [get]
func (server *Server) liveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, healthResponse{Status: "alive", Service: serviceName})
}

// readiness runs every registered dependency check.
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Failure	503	{object}	healthResponse
//	@Router		/health/ready [get]
func (server *Server) readiness(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()
	
	checks := make(map[string]string, len(server.healthChecks))
	ready := true
	for name, check := range server.healthChecks {
		if err := check(checkCtx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			checks[name] = "unavailable"
			ready = false
			continue
		}
		checks[name] = "ok"
	}
	
	if !ready {
		ctx.JSON(http.StatusServiceUnavailable, healthResponse{Status: "not ready", Service: serviceName, Checks: checks})
		return
	}
	
	ctx.JSON(http.StatusOK, healthResponse{Status: "ready", Service: serviceName, Checks: checks})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/BarkinBalci/donation-session-service/docs"
	"github.com/BarkinBalci/donation-session-service/internal/dto"
	"github.com/BarkinBalci/donation-session-service/internal/service"
)

type Handler struct {
	generationService service.GenerationServicer
	router            *gin.Engine
	log               *zap.Logger
}

func NewHandler(generationService service.GenerationServicer, log *zap.Logger) *Handler {
	h := &Handler{
		generationService: generationService,
		router:            gin.Default(),
		log:               log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/generations", h.submitGeneration)
	h.router.GET("/sessions/:session_id", h.getSession)
	h.router.GET("/summary", h.getSummary)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles GET /health and reports the session store as well
// @Summary Health check
// @Description Check that the API is running and ClickHouse is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.generationService.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "unavailable",
			"clickhouse": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// submitGeneration handles POST /generations
// @Summary Submit a generation job
// @Description Queue a session table generation from a payments and a campaigns CSV export. Omitted parameters use the service defaults.
// @Tags generations
// @Accept json
// @Produce json
// @Param job body dto.SubmitGenerationRequest true "Generation job"
// @Success 202 {object} dto.SubmitGenerationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generations [post]
func (h *Handler) submitGeneration(c *gin.Context) {
	var req dto.SubmitGenerationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid generation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.generationService.SubmitGeneration(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to submit generation job")
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// getSession handles GET /sessions/:session_id
// @Summary Get a session
// @Description Retrieve every row of one generated session ordered by carousel position
// @Tags sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{session_id} [get]
func (h *Handler) getSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	response, err := h.generationService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err, "Failed to get session", zap.String("session_id", sessionID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// getSummary handles GET /summary
// @Summary Get session summary
// @Description Retrieve session, user and row counts over a session_ts range with optional grouping by day or position
// @Tags sessions
// @Produce json
// @Param from query int true "Start timestamp (Unix epoch)" example:"1677628800"
// @Param to query int true "End timestamp (Unix epoch)" example:"1680307200"
// @Param group_by query string false "Field to group by (day, position)" Enums(day, position)
// @Success 200 {object} dto.GetSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	var req dto.GetSummaryRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid summary request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.generationService.GetSummary(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to get summary",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To),
			zap.String("group_by", req.GroupBy))
		return
	}

	h.log.Info("Summary retrieved",
		zap.Uint64("session_count", response.SessionCount),
		zap.Uint64("row_count", response.RowCount))

	c.JSON(http.StatusOK, response)
}

// respondError maps service errors onto status codes
func (h *Handler) respondError(c *gin.Context, err error, msg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.log.Warn(msg, append(fields, zap.Error(err))...)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		h.log.Error(msg, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

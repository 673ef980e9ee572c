package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Likitha-Gedipudi/social-media-roi-attribution/docs"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/dto"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/service"
)

type Handler struct {
	runService service.RunServicer
	router     *gin.Engine
	log        *zap.Logger
}

func NewHandler(runService service.RunServicer, log *zap.Logger) *Handler {
	h := &Handler{
		runService: runService,
		router:     gin.Default(),
		log:        log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/attribution/runs", h.triggerRun)
	h.router.GET("/attribution/results", h.getResults)
	h.router.GET("/attribution/channel-weights", h.getChannelWeights)
	h.router.GET("/influencers/scores", h.getScores)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// triggerRun handles POST /attribution/runs
// @Summary Trigger an attribution run
// @Description Queue a full attribution run under the given model; the run executes asynchronously
// @Tags attribution
// @Accept json
// @Produce json
// @Param run body dto.TriggerRunRequest true "Run parameters"
// @Success 202 {object} dto.TriggerRunResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attribution/runs [post]
func (h *Handler) triggerRun(c *gin.Context) {
	var req dto.TriggerRunRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid run request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if _, err := domain.ParseModel(req.Model); err != nil {
		h.log.Warn("Invalid model in run request",
			zap.String("model", req.Model))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.runService.TriggerRun(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to trigger run",
			zap.Error(err),
			zap.String("model", req.Model))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Run accepted",
		zap.String("run_id", response.RunID),
		zap.String("model", response.Model))

	c.JSON(http.StatusAccepted, response)
}

// getResults handles GET /attribution/results
// @Summary Get attribution results
// @Description Retrieve stored touchpoint credits for an attribution model
// @Tags attribution
// @Produce json
// @Param model query string true "Attribution model" Enums(first_touch, last_touch, linear, time_decay, position_based, markov_chain) example:"linear"
// @Param limit query int false "Maximum rows to return" example:"100"
// @Success 200 {object} dto.GetResultsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attribution/results [get]
func (h *Handler) getResults(c *gin.Context) {
	var req dto.GetResultsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid results request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if _, err := domain.ParseModel(req.Model); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.runService.GetResults(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to get attribution results",
			zap.Error(err),
			zap.String("model", req.Model))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// getChannelWeights handles GET /attribution/channel-weights
// @Summary Get Markov channel weights
// @Description Retrieve the latest channel removal effects and normalized weights
// @Tags attribution
// @Produce json
// @Success 200 {object} dto.GetChannelWeightsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attribution/channel-weights [get]
func (h *Handler) getChannelWeights(c *gin.Context) {
	response, err := h.runService.GetChannelWeights(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get channel weights", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// getScores handles GET /influencers/scores
// @Summary Get influencer scores
// @Description Retrieve stored influencer score cards, optionally filtered by performance segment
// @Tags influencers
// @Produce json
// @Param segment query string false "Performance segment" Enums(High, Medium, Low) example:"High"
// @Param limit query int false "Maximum rows to return" example:"100"
// @Success 200 {object} dto.GetScoresResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /influencers/scores [get]
func (h *Handler) getScores(c *gin.Context) {
	var req dto.GetScoresRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid scores request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if req.Segment != "" &&
		req.Segment != domain.SegmentHigh &&
		req.Segment != domain.SegmentMedium &&
		req.Segment != domain.SegmentLow {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "segment must be one of High, Medium, Low",
		})
		return
	}

	response, err := h.runService.GetScores(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to get influencer scores",
			zap.Error(err),
			zap.String("segment", req.Segment))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

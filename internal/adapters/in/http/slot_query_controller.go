package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ligovsky/booking-slots-service/internal/config"
	"github.com/ligovsky/booking-slots-service/internal/core/domain"
	"github.com/ligovsky/booking-slots-service/internal/core/json_types"
	"github.com/ligovsky/booking-slots-service/internal/core/ports/in"
	"github.com/ligovsky/booking-slots-service/internal/core/ports/out"
)

type SlotQueryController struct {
	useCase in.SlotQueryUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewSlotQueryController(useCase in.SlotQueryUseCase, cfg *config.Config, logger out.LoggerPort) *SlotQueryController {
	return &SlotQueryController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

func (c *SlotQueryController) RegisterRoutes(router *gin.Engine) {
	// Разрешающий CORS, preflight OPTIONS отвечается до аутентификации
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", c.health)

	api := router.Group("/api/v1")
	if c.cfg.AuthEnabled() {
		api.Use(c.basicAuth())
	}
	{
		api.POST("/slots/query", c.querySlots)
	}
}

type QuerySlotsRequest struct {
	CustomerID      string          `json:"customer_id"`
	Date            json_types.Date `json:"date"`
	DurationMinutes int             `json:"duration_minutes"`
	StepMinutes     *int            `json:"step_minutes"`
}

func (c *SlotQueryController) querySlots(ctx *gin.Context) {
	logger := c.logger.WithFields(out.LogFields{
		"requestId": uuid.NewString(),
	})

	var req QuerySlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn("http.slots.query.bad_request", out.LogFields{
			"error": err.Error(),
		})
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, err := domain.NewSlotQuery(req.CustomerID, req.Date.Date, req.DurationMinutes, req.StepMinutes)
	if err != nil {
		logger.Warn("http.slots.query.validation_failed", out.LogFields{
			"error": err.Error(),
		})
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := c.useCase.QuerySlots(ctx.Request.Context(), query)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		logger.Error("http.slots.query.failed", out.LogFields{
			"customerId": query.CustomerID,
			"error":      err.Error(),
		})
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (c *SlotQueryController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.cfg.App.Version,
	})
}

func (c *SlotQueryController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// AccountHandler handles user and subscriber endpoints
type AccountHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(services *service.Services, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		services: services,
		log:      log.With().Str("handler", "account").Logger(),
	}
}

// ListUsers handles GET /v1/dashboard/users
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.services.Account.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, users)
}

// CreateUser handles POST /v1/dashboard/users
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	user, err := h.services.Account.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, user)
}

// UpdateUser handles PATCH /v1/dashboard/users/:id
func (h *AccountHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	user, err := h.services.Account.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, user)
}

// Subscribe handles POST /v1/subscribers
func (h *AccountHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email is required")
		return
	}

	sub, err := h.services.Account.Subscribe(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, sub)
}

// ListSubscribers handles GET /v1/dashboard/subscribers
func (h *AccountHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.services.Account.ListSubscribers(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, subs)
}

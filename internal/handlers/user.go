package handlers

import (
	"log/slog"
	"net/http"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/dto"
	"ControleGastos/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
	log *slog.Logger
}

func NewUserHandler(svc *service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Register a user
// @Description  The identifier is generated by the server.
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "User body"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuario [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.svc.Create(c.Request.Context(), req.Name, req.Age, req.Email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Location", "/api/usuario/"+u.Identifier)
	c.JSON(http.StatusCreated, userToResponse(u))
}

// List godoc
// @Summary      List users with their totals
// @Tags         usuario
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      500  {object}  map[string]string
// @Router       /usuario [get]
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, usersToResponses(list))
}

// Totals godoc
// @Summary      Totals across all users
// @Tags         usuario
// @Produce      json
// @Success      200  {object}  dto.TotalsResponse
// @Failure      500  {object}  map[string]string
// @Router       /usuario/totais [get]
func (h *UserHandler) Totals(c *gin.Context) {
	t, err := h.svc.Totals(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.TotalsResponse{
		TotalIncome:      t.TotalIncome.StringFixed(2),
		TotalExpense:     t.TotalExpense.StringFixed(2),
		NetBalance:       t.NetBalance().StringFixed(2),
		UserCount:        t.UserCount,
		TransactionCount: t.TransactionCount,
	})
}

// Get godoc
// @Summary      Get a user by identifier
// @Tags         usuario
// @Produce      json
// @Param        identifier  path      string  true  "User identifier"
// @Success      200         {object}  dto.UserResponse
// @Failure      404         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /usuario/{identifier} [get]
func (h *UserHandler) Get(c *gin.Context) {
	identifier, ok := parseIdentifier(c, "identifier")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// Update godoc
// @Summary      Update name and email of a user
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateUserRequest  true  "Identifier and new values"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuario [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Update(c.Request.Context(), req.Identifier, req.Name, req.Email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// Delete godoc
// @Summary      Delete a user and all of its transactions
// @Tags         usuario
// @Param        identifier  path  string  true  "User identifier"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /usuario/{identifier} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	identifier, ok := parseIdentifier(c, "identifier")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), identifier); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIdentifier answers 404 for values that cannot be an identifier.
func parseIdentifier(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	if !service.IsIdentifier(raw) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return "", false
	}
	return raw, true
}

func userToResponse(u dom.UserSummary) dto.UserResponse {
	return dto.UserResponse{
		Identifier:   u.Identifier,
		Name:         u.Name,
		Age:          u.Age,
		Email:        u.Email,
		TotalIncome:  u.TotalIncome.StringFixed(2),
		TotalExpense: u.TotalExpense.StringFixed(2),
		Balance:      u.Balance().StringFixed(2),
		CreatedAt:    u.CreatedAt,
	}
}

func usersToResponses(list []dom.UserSummary) []dto.UserResponse {
	out := make([]dto.UserResponse, len(list))
	for i := range list {
		out[i] = userToResponse(list[i])
	}
	return out
}

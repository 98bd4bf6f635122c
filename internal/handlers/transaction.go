package handlers

import (
	"log/slog"
	"net/http"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/dto"
	"ControleGastos/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	svc *service.TransactionService
	log *slog.Logger
}

func NewTransactionHandler(svc *service.TransactionService, log *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Record an income or expense
// @Description  Minors may only record expenses, and an expense may not exceed the current balance.
// @Tags         transacao
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTransactionRequest  true  "Transaction body"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /transacao [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Description, req.Amount, req.Kind.Value(), req.UserIdentifier)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, transactionToResponse(t))
}

// List godoc
// @Summary      List all transactions, newest first
// @Tags         transacao
// @Produce      json
// @Success      200  {array}   dto.TransactionResponse
// @Failure      500  {object}  map[string]string
// @Router       /transacao [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponses(list))
}

// ListByUser godoc
// @Summary      List the transactions of one user
// @Tags         transacao
// @Produce      json
// @Param        identifier  path      string  true  "User identifier"
// @Success      200         {array}   dto.TransactionResponse
// @Failure      500         {object}  map[string]string
// @Router       /transacao/usuario/{identifier} [get]
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	list, err := h.svc.ListByUser(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponses(list))
}

func transactionToResponse(t dom.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:             t.ID,
		Description:    t.Description,
		Amount:         t.Amount.StringFixed(2),
		Kind:           t.Kind,
		UserIdentifier: t.UserIdentifier,
		UserName:       t.UserName,
		CreatedAt:      t.CreatedAt,
	}
}

func transactionsToResponses(list []dom.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(list))
	for i := range list {
		out[i] = transactionToResponse(list[i])
	}
	return out
}

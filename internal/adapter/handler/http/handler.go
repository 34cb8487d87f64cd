package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:         http.StatusBadRequest,
	domain.ErrCatalogUnavailable: http.StatusBadGateway,

	domain.ErrOrderNoItems:      http.StatusBadRequest,
	domain.ErrInvalidAmount:     http.StatusBadRequest,
	domain.ErrProductNotFound:   http.StatusBadRequest,
	domain.ErrInvalidPrice:      http.StatusBadRequest,
	domain.ErrInvalidTransition: http.StatusBadRequest,
	domain.ErrStockConflict:     http.StatusConflict,
}

// statusCode unwraps, so parameterized errors built on the sentinels still
// map to their status.
func statusCode(err error) int {
	for sentinel, code := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(code, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

package fee

import (
	"go-school/internal/shared/apperror"
	"go-school/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("fee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("fee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return false
	}
	return true
}

func (h *Handler) respond(c *gin.Context, status int, data any, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, status, data, nil)
}

func (h *Handler) deleted(c *gin.Context, err error) {
	h.respond(c, http.StatusOK, gin.H{"deleted": true}, err)
}

func (h *Handler) CreateClassFee(c *gin.Context) {
	var req FeeItemRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.CreateClassFee(c.Request.Context(), c.GetString("school_id"), req)
	h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ListClassFees(c *gin.Context) {
	resp, err := h.service.ListClassFees(c.Request.Context(), c.GetString("school_id"), c.Query("class_id"))
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) UpdateClassFee(c *gin.Context) {
	var req FeeItemRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateClassFee(c.Request.Context(), c.GetString("school_id"), c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) DeleteClassFee(c *gin.Context) {
	h.deleted(c, h.service.DeleteClassFee(c.Request.Context(), c.GetString("school_id"), c.Param("id")))
}

func (h *Handler) CreateCustomFee(c *gin.Context) {
	var req FeeItemRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.CreateCustomFee(c.Request.Context(), c.GetString("school_id"), req)
	h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ListCustomFees(c *gin.Context) {
	resp, err := h.service.ListCustomFees(c.Request.Context(), c.GetString("school_id"), c.Query("class_id"))
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) UpdateCustomFee(c *gin.Context) {
	var req FeeItemRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateCustomFee(c.Request.Context(), c.GetString("school_id"), c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) DeleteCustomFee(c *gin.Context) {
	h.deleted(c, h.service.DeleteCustomFee(c.Request.Context(), c.GetString("school_id"), c.Param("id")))
}

func (h *Handler) CreateRoute(c *gin.Context) {
	var req RouteRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.CreateRoute(c.Request.Context(), c.GetString("school_id"), req)
	h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ListRoutes(c *gin.Context) {
	resp, err := h.service.ListRoutes(c.Request.Context(), c.GetString("school_id"))
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) UpdateRoute(c *gin.Context) {
	var req RouteRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateRoute(c.Request.Context(), c.GetString("school_id"), c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) DeleteRoute(c *gin.Context) {
	h.deleted(c, h.service.DeleteRoute(c.Request.Context(), c.GetString("school_id"), c.Param("id")))
}

func (h *Handler) AssignTransport(c *gin.Context) {
	var req AssignmentRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.AssignTransport(c.Request.Context(), c.GetString("school_id"), req)
	h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	resp, err := h.service.ListAssignments(c.Request.Context(), c.GetString("school_id"), c.Query("route_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, resp)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	var req UpdateAssignmentRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.UpdateAssignment(c.Request.Context(), c.GetString("school_id"), c.Param("id"), req)
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	h.deleted(c, h.service.DeleteAssignment(c.Request.Context(), c.GetString("school_id"), c.Param("id")))
}

func (h *Handler) GetStudentSummary(c *gin.Context) {
	resp, err := h.service.GetStudentSummary(c.Request.Context(), c.GetString("school_id"), c.Param("id"), c.Query("year"))
	h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if !bind(c, &req) {
		return
	}
	resp, err := h.service.RecordPayment(c.Request.Context(), c.GetString("school_id"), c.GetString("user_id"), req)
	h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ListPayments(c *gin.Context) {
	resp, err := h.service.ListPayments(c.Request.Context(), c.GetString("school_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, resp)
}

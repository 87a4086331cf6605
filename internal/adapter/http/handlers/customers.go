package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/adapter/http/mapper"
	"github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/adapter/http/validation"
	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
	"github.com/agenciathoth/checklist/pkg/apierrors"
)

type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	lang := middleware.GetLang(c)

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list customers", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomerItems(customers))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	input, err := validation.BuildCustomerInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), session, input)
	if err != nil {
		zap.L().Error("failed to create customer", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCustomerItem(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || customerID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	input, err := validation.BuildCustomerInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	if err := h.customerService.UpdateCustomer(c.Request.Context(), session, customerID, input); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update customer", zap.Uint64("customer_id", customerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) ToggleArchive(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || customerID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.customerService.ToggleArchive(c.Request.Context(), session, customerID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to toggle customer archive", zap.Uint64("customer_id", customerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)

	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || customerID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrNotArchived) {
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgMustArchiveCustomer, lang),
			)
			return
		}

		zap.L().Error("failed to delete customer", zap.Uint64("customer_id", customerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) GetCustomerPage(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	slug := c.Param("slug")
	customer, err := h.customerService.GetCustomerPage(c.Request.Context(), slug, session != nil)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load customer page", zap.String("slug", slug), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomerItem(customer))
}

func (h *CustomerHandler) GetCalendar(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)
	slug := c.Param("slug")

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
			)
			return
		}
		month = parsed
	}

	calendar, err := h.customerService.GetCalendar(c.Request.Context(), slug, month, session != nil)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to build customer calendar", zap.String("slug", slug), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarResponse(calendar))
}

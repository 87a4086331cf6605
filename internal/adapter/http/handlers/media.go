package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/adapter/http/mapper"
	"github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
	"github.com/agenciathoth/checklist/pkg/apierrors"
)

type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) PresignUpload(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	ticket, err := h.mediaService.PresignUpload(c.Request.Context(), ports.PresignUploadInput{
		FileName:   req.FileName,
		FileType:   req.FileType,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to presign upload", zap.Uint64("customer_id", req.CustomerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUploadTicket(ticket))
}

// Upload accepts a multipart file and pushes it to object storage through
// the API, for clients that cannot use presigned URLs.
func (h *MediaHandler) Upload(c *gin.Context) {
	lang := middleware.GetLang(c)

	customerID, err := strconv.ParseUint(c.PostForm("customer_id"), 10, 64)
	if err != nil || customerID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Error("failed to open uploaded file", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	ticket, err := h.mediaService.Upload(
		c.Request.Context(), customerID, fileHeader.Filename, contentType, file, fileHeader.Size,
	)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCustomerNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to upload media", zap.Uint64("customer_id", customerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUploadTicket(ticket))
}

func (h *MediaHandler) RegisterMedia(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	var req dto.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	media, err := h.mediaService.RegisterMedia(c.Request.Context(), session, domain.CreateMediaInput{
		TaskID: req.TaskID,
		Path:   req.Path,
		Type:   req.Type,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to register media", zap.Uint64("task_id", req.TaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMediaItem(media))
}

func (h *MediaHandler) SetOrder(c *gin.Context) {
	lang := middleware.GetLang(c)

	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || mediaID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.UpdateMediaOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	if err := h.mediaService.SetOrder(c.Request.Context(), mediaID, req.Order); err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgMediaNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to set media order", zap.Uint64("media_id", mediaID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) ReorderTaskMedia(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.mediaService.ReorderTaskMedia(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to reorder task media", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	lang := middleware.GetLang(c)

	mediaID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || mediaID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), mediaID); err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgMediaNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete media", zap.Uint64("media_id", mediaID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

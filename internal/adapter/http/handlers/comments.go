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
	"github.com/agenciathoth/checklist/internal/adapter/http/validation"
	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
	"github.com/agenciathoth/checklist/pkg/apierrors"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListThreads(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	threads, err := h.commentService.ListThreads(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list comment threads", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToThreadItems(threads, session))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	text, author, err := validation.ValidateCreateComment(req, session)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), session, taskID, text, author, req.ParentID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrNestedReply) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgNestedReply, lang),
			)
			return
		}

		zap.L().Error("failed to create comment", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment, session))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidation, lang),
		)
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), session, commentID, req.Text); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		zap.L().Error("failed to update comment", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), session, commentID); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		zap.L().Error("failed to delete comment", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	lang := middleware.GetLang(c)
	session := middleware.GetSession(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	if err := h.commentService.ToggleLike(c.Request.Context(), session, commentID); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		zap.L().Error("failed to toggle comment like", zap.Uint64("comment_id", commentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

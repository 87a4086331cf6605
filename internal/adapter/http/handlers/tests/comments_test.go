package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/adapter/http/handlers"
	"github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/pkg/apierrors"
	"github.com/agenciathoth/checklist/pkg/translator"
)

type commentServiceMock struct {
	mock.Mock
}

func (m *commentServiceMock) ListThreads(ctx context.Context, taskID uint64) ([]domain.Thread, error) {
	args := m.Called(ctx, taskID)

	var threads []domain.Thread
	if value := args.Get(0); value != nil {
		threads = value.([]domain.Thread)
	}
	return threads, args.Error(1)
}

func (m *commentServiceMock) CreateComment(ctx context.Context, session *domain.Session, taskID uint64, text, author string, parentID *uint64) (domain.Comment, error) {
	args := m.Called(ctx, session, taskID, text, author, parentID)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentServiceMock) UpdateComment(ctx context.Context, session *domain.Session, id uint64, text string) error {
	args := m.Called(ctx, session, id, text)
	return args.Error(0)
}

func (m *commentServiceMock) DeleteComment(ctx context.Context, session *domain.Session, id uint64) error {
	args := m.Called(ctx, session, id)
	return args.Error(0)
}

func (m *commentServiceMock) ToggleLike(ctx context.Context, session *domain.Session, id uint64) error {
	args := m.Called(ctx, session, id)
	return args.Error(0)
}

func TestCommentHandler_ListThreads_AnonymousViewer(t *testing.T) {
	createdAt := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	parentID := uint64(1)

	serviceMock := new(commentServiceMock)
	serviceMock.On("ListThreads", mock.Anything, uint64(7)).Return(
		[]domain.Thread{
			{
				Comment: domain.Comment{
					ID: 1, TaskID: 7,
					Author:    domain.RegisteredAuthor{UserID: 2, Name: "Ana"},
					Text:      "Legenda aprovada?",
					CreatedAt: createdAt, UpdatedAt: createdAt,
				},
				Replies: []domain.Comment{
					{
						ID: 2, TaskID: 7, ParentID: &parentID,
						Author:    domain.AnonymousAuthor{Name: "Seu João"},
						Text:      "Aprovada!",
						CreatedAt: createdAt.Add(time.Hour), UpdatedAt: createdAt.Add(time.Hour),
					},
				},
			},
		},
		nil,
	).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id/comments", middleware.LanguageMiddleware(), handler.ListThreads)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/7/comments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ThreadItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Ana", got[0].Comment.Author.Name)
	require.False(t, got[0].Comment.Author.Anonymous)
	require.Len(t, got[0].Replies, 1)
	require.Equal(t, "Seu João", got[0].Replies[0].Author.Name)
	require.True(t, got[0].Replies[0].Author.Anonymous)

	// Anonymous visitors never get mutation affordances.
	require.False(t, got[0].Comment.CanLike)
	require.False(t, got[0].Comment.CanEdit)
	require.False(t, got[0].Comment.CanDelete)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_ListThreads_TaskNotFound(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("ListThreads", mock.Anything, uint64(999)).Return(nil, domain.ErrTaskNotFound).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id/comments", middleware.LanguageMiddleware(), handler.ListThreads)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999/comments", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the task", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_ListThreads_AdminViewerFlags(t *testing.T) {
	session := &domain.Session{UserID: 1, Name: "Rui", Role: domain.UserRoleAdmin}
	createdAt := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)

	serviceMock := new(commentServiceMock)
	serviceMock.On("ListThreads", mock.Anything, uint64(7)).Return(
		[]domain.Thread{
			{
				Comment: domain.Comment{
					ID: 1, TaskID: 7,
					Author:    domain.AnonymousAuthor{Name: "Seu João"},
					Text:      "Pode trocar a foto?",
					CreatedAt: createdAt, UpdatedAt: createdAt,
				},
			},
		},
		nil,
	).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id/comments", middleware.LanguageMiddleware(), withSession(session), handler.ListThreads)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/7/comments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ThreadItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	// Admins can like and delete anonymous comments but never edit them.
	require.True(t, got[0].Comment.CanLike)
	require.False(t, got[0].Comment.CanEdit)
	require.True(t, got[0].Comment.CanDelete)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_CreateComment_AnonymousRequiresAuthor(t *testing.T) {
	serviceMock := new(commentServiceMock)
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/comments", middleware.LanguageMiddleware(), handler.CreateComment)

	body := `{"text":"Pode trocar a foto?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/7/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Validation error", got.ErrDetails.Message)
}

func TestCommentHandler_CreateComment_AnonymousSuccess(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On(
		"CreateComment", mock.Anything, (*domain.Session)(nil), uint64(7), "Pode trocar a foto?", "Seu João", (*uint64)(nil),
	).Return(
		domain.Comment{ID: 9, TaskID: 7, Author: domain.AnonymousAuthor{Name: "Seu João"}, Text: "Pode trocar a foto?"},
		nil,
	).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/comments", middleware.LanguageMiddleware(), handler.CreateComment)

	body := `{"text":" Pode trocar a foto? ","author":" Seu João "}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/7/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.CommentItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(9), got.ID)
	require.True(t, got.Author.Anonymous)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_CreateComment_NestedReply(t *testing.T) {
	parentID := uint64(2)

	serviceMock := new(commentServiceMock)
	serviceMock.On(
		"CreateComment", mock.Anything, (*domain.Session)(nil), uint64(7), "Respondendo resposta", "Seu João", &parentID,
	).Return(domain.Comment{}, domain.ErrNestedReply).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/comments", middleware.LanguageMiddleware(), handler.CreateComment)

	body := `{"text":"Respondendo resposta","author":"Seu João","parent_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/7/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Replies cannot be nested", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_UpdateComment_Unauthorized(t *testing.T) {
	serviceMock := new(commentServiceMock)
	serviceMock.On("UpdateComment", mock.Anything, (*domain.Session)(nil), uint64(9), "Novo texto").Return(domain.ErrUnauthorized).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/comments/:id", middleware.LanguageMiddleware(), handler.UpdateComment)

	body := `{"text":"Novo texto"}`
	req := httptest.NewRequest(http.MethodPut, "/api/comments/9", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguagePt)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Não autorizado", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_ToggleLike_Success(t *testing.T) {
	session := &domain.Session{UserID: 2, Name: "Ana", Role: domain.UserRoleEditor}

	serviceMock := new(commentServiceMock)
	serviceMock.On("ToggleLike", mock.Anything, session, uint64(9)).Return(nil).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.PATCH("/api/comments/:id/like", middleware.LanguageMiddleware(), withSession(session), handler.ToggleLike)

	req := httptest.NewRequest(http.MethodPatch, "/api/comments/9/like", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestCommentHandler_DeleteComment_NotFound(t *testing.T) {
	session := &domain.Session{UserID: 1, Name: "Rui", Role: domain.UserRoleAdmin}

	serviceMock := new(commentServiceMock)
	serviceMock.On("DeleteComment", mock.Anything, session, uint64(404)).Return(domain.ErrCommentNotFound).Once()
	handler := handlers.NewCommentHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/comments/:id", middleware.LanguageMiddleware(), withSession(session), handler.DeleteComment)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/404", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the comment", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

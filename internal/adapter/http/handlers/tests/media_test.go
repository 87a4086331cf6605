package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/adapter/http/handlers"
	"github.com/agenciathoth/checklist/internal/adapter/http/middleware"
	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
	"github.com/agenciathoth/checklist/pkg/apierrors"
	"github.com/agenciathoth/checklist/pkg/translator"
)

type mediaServiceMock struct {
	mock.Mock
}

func (m *mediaServiceMock) PresignUpload(ctx context.Context, input ports.PresignUploadInput) (domain.UploadTicket, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.UploadTicket), args.Error(1)
}

func (m *mediaServiceMock) Upload(ctx context.Context, customerID uint64, fileName, contentType string, r io.Reader, size int64) (domain.UploadTicket, error) {
	args := m.Called(ctx, customerID, fileName, contentType, r, size)
	return args.Get(0).(domain.UploadTicket), args.Error(1)
}

func (m *mediaServiceMock) RegisterMedia(ctx context.Context, session *domain.Session, input domain.CreateMediaInput) (domain.Media, error) {
	args := m.Called(ctx, session, input)
	return args.Get(0).(domain.Media), args.Error(1)
}

func (m *mediaServiceMock) SetOrder(ctx context.Context, id uint64, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

func (m *mediaServiceMock) ReorderTaskMedia(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *mediaServiceMock) DeleteMedia(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMediaHandler_PresignUpload_Success(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On(
		"PresignUpload", mock.Anything,
		ports.PresignUploadInput{FileName: "video.mp4", FileType: "video/mp4", CustomerID: 3},
	).Return(
		domain.UploadTicket{URL: "https://bucket.example.com/presigned", Path: "3/abc_video.mp4", Type: "video/mp4"},
		nil,
	).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/uploads/presign", middleware.LanguageMiddleware(), handler.PresignUpload)

	body := `{"file_name":"video.mp4","file_type":"video/mp4","customer_id":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UploadTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "https://bucket.example.com/presigned", got.URL)
	require.Equal(t, "3/abc_video.mp4", got.Path)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_PresignUpload_MissingFields(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/uploads/presign", middleware.LanguageMiddleware(), handler.PresignUpload)

	body := `{"file_name":"video.mp4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Validation error", got.ErrDetails.Message)
}

func TestMediaHandler_PresignUpload_CustomerNotFound(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On(
		"PresignUpload", mock.Anything,
		ports.PresignUploadInput{FileName: "video.mp4", FileType: "video/mp4", CustomerID: 999},
	).Return(domain.UploadTicket{}, domain.ErrCustomerNotFound).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/uploads/presign", middleware.LanguageMiddleware(), handler.PresignUpload)

	body := `{"file_name":"video.mp4","file_type":"video/mp4","customer_id":999}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the customer", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_Upload_CustomerNotFound(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On(
		"Upload", mock.Anything, uint64(999), "video.mp4", "video/mp4", mock.Anything, mock.Anything,
	).Return(domain.UploadTicket{}, domain.ErrCustomerNotFound).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/uploads", middleware.LanguageMiddleware(), handler.Upload)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("customer_id", "999"))
	part, err := form.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="file"; filename="video.mp4"`},
		"Content-Type":        {"video/mp4"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a video"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the customer", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_RegisterMedia_Success(t *testing.T) {
	session := &domain.Session{UserID: 2, Name: "Ana", Role: domain.UserRoleEditor}

	serviceMock := new(mediaServiceMock)
	serviceMock.On(
		"RegisterMedia", mock.Anything, session,
		domain.CreateMediaInput{TaskID: 7, Path: "3/abc_video.mp4", Type: "video/mp4"},
	).Return(
		domain.Media{ID: 1, TaskID: 7, Path: "3/abc_video.mp4", URL: "https://cdn.example.com/3/abc_video.mp4", Type: "video/mp4", Order: 1},
		nil,
	).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/media", middleware.LanguageMiddleware(), withSession(session), handler.RegisterMedia)

	body := `{"task_id":7,"path":"3/abc_video.mp4","type":"video/mp4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/media", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.MediaItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, 1, got.Order)
	require.Equal(t, "https://cdn.example.com/3/abc_video.mp4", got.URL)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_RegisterMedia_TaskNotFound(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On("RegisterMedia", mock.Anything, (*domain.Session)(nil), mock.Anything).Return(domain.Media{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.POST("/api/media", middleware.LanguageMiddleware(), handler.RegisterMedia)

	body := `{"task_id":999,"path":"3/abc_video.mp4","type":"video/mp4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/media", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the task", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_SetOrder_Success(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On("SetOrder", mock.Anything, uint64(1), 3).Return(nil).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/media/:id/order", middleware.LanguageMiddleware(), handler.SetOrder)

	body := `{"order":3}`
	req := httptest.NewRequest(http.MethodPut, "/api/media/1/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestMediaHandler_DeleteMedia_NotFound(t *testing.T) {
	serviceMock := new(mediaServiceMock)
	serviceMock.On("DeleteMedia", mock.Anything, uint64(404)).Return(domain.ErrMediaNotFound).Once()
	handler := handlers.NewMediaHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/media/:id", middleware.LanguageMiddleware(), handler.DeleteMedia)

	req := httptest.NewRequest(http.MethodDelete, "/api/media/404", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not find the media", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

package handler

import (
	"context"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/errors"
	transcriptDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcrypt/internal/adapter/presenter"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/domain/repositories"
	"github.com/johnquangdev/transcrypt/internal/usecase/transcript"
)

const (
	deliveryDownload = "download"
	deliveryLink     = "link"

	// HeaderMarkupWarnings carries the number of paragraphs exported without their styling
	HeaderMarkupWarnings = "X-Markup-Warnings"
)

// TranscriptService is what the transcript endpoints need from the transcript usecase
type TranscriptService interface {
	Create(ctx context.Context, req entities.TranscriptRequest) (*transcript.Session, error)
	Get(ctx context.Context, id string) (*transcript.Session, error)
	SetTimestamps(ctx context.Context, id string, on bool) (*transcript.Session, error)
	Export(ctx context.Context, id string, req entities.ExportRequest) (*transcript.ExportResult, error)
	Delete(ctx context.Context, id string) error
}

// Transcript exposes transcript sessions: load, toggle timestamps, export
type Transcript struct {
	transcripts TranscriptService
	artifacts   repositories.ArtifactStore
	logger      *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler. artifacts may be nil,
// in which case only direct downloads are offered.
func NewTranscriptHandler(transcripts TranscriptService, artifacts repositories.ArtifactStore, logger *zap.Logger) *Transcript {
	return &Transcript{
		transcripts: transcripts,
		artifacts:   artifacts,
		logger:      logger,
	}
}

// Create handles POST /transcripts
// @Summary      Load a transcript
// @Description  Fetches a caption track and renders it with and without timestamps
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.CreateTranscriptRequest  true  "Video or track token"
// @Success      201      {object}  common.SuccessResponse{data=transcript.TranscriptResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid request"
// @Failure      502      {object}  common.ErrorResponse  "Transcript could not be loaded"
// @Router       /transcripts [post]
func (h *Transcript) Create(c echo.Context) error {
	var req transcriptDTO.CreateTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.transcripts.Create(c.Request().Context(), entities.TranscriptRequest{
		Video:       req.Video,
		Query:       req.Data,
		Language:    req.Language,
		TranslateTo: req.TLang,
		Title:       req.Title,
	})
	if err != nil {
		if session != nil && session.State() == entities.SessionStateFailed {
			return HandleError(h.logger, c,
				errors.ErrSessionLoadFailed(session.Failure(), err).WithDetail("session_id", session.ID()))
		}
		return HandleError(h.logger, c, toAppError(c, err))
	}

	return HandleCreated(h.logger, c, presenter.ToTranscriptResponse(session))
}

// Get handles GET /transcripts/:id
// @Summary      Get a transcript
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=transcript.TranscriptResponse}
// @Failure      404  {object}  common.ErrorResponse  "Session not found"
// @Router       /transcripts/{id} [get]
func (h *Transcript) Get(c echo.Context) error {
	session, err := h.transcripts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(session))
}

// SetTimestamps handles PUT /transcripts/:id/timestamps
// @Summary      Show or hide timestamps
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Session ID"
// @Param        request  body      transcript.SetTimestampsRequest  true  "Timestamps on or off"
// @Success      200      {object}  common.SuccessResponse{data=transcript.TranscriptResponse}
// @Failure      404      {object}  common.ErrorResponse  "Session not found"
// @Failure      409      {object}  common.ErrorResponse  "Transcript not ready or export in progress"
// @Router       /transcripts/{id}/timestamps [put]
func (h *Transcript) SetTimestamps(c echo.Context) error {
	var req transcriptDTO.SetTimestampsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	session, err := h.transcripts.SetTimestamps(c.Request().Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToTranscriptResponse(session))
}

// Export handles GET /transcripts/:id/export
// @Summary      Export a transcript
// @Description  Exports the current view as pdf, word, text or markdown, as a download or a temporary link
// @Tags         Transcripts
// @Produce      application/pdf,application/vnd.openxmlformats-officedocument.wordprocessingml.document,text/plain,text/markdown,json
// @Param        id        path      string  true   "Session ID"
// @Param        format    query     string  true   "pdf, word, text or markdown"
// @Param        delivery  query     string  false  "download (default) or link"
// @Param        title     query     string  false  "Title for the document header and filename, defaults to the video title"
// @Success      200       {file}    file
// @Failure      400       {object}  common.ErrorResponse  "Unsupported format"
// @Failure      404       {object}  common.ErrorResponse  "Session not found"
// @Failure      409       {object}  common.ErrorResponse  "An export is already in progress"
// @Router       /transcripts/{id}/export [get]
func (h *Transcript) Export(c echo.Context) error {
	var req transcriptDTO.ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	format, err := entities.ParseExportFormat(req.Format)
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}

	delivery := req.Delivery
	if delivery == "" {
		delivery = deliveryDownload
	}
	if delivery == deliveryLink && h.artifacts == nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Link delivery is not available"))
	}

	id := c.Param("id")
	result, err := h.transcripts.Export(c.Request().Context(), id, entities.ExportRequest{
		Format:     format,
		VideoTitle: strings.TrimSpace(req.Title),
	})
	if err != nil {
		mapped := toAppError(c, err)
		if appErr, ok := mapped.(errors.AppError); ok && appErr.Code == errors.ErrorCode_INTERNAL {
			mapped = errors.ErrExportFailed(string(format), err)
		}
		return HandleError(h.logger, c, mapped)
	}

	if delivery == deliveryLink {
		key := path.Join("exports", id, uuid.NewString(), result.Artifact.Filename)
		url, err := h.artifacts.Publish(c.Request().Context(), key, result.Artifact)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrStorageFailed("publish export", err))
		}
		return HandleSuccess(h.logger, c, presenter.ToExportLinkResponse(url, result))
	}

	if n := warningCount(result.Warning); n > 0 {
		c.Response().Header().Set(HeaderMarkupWarnings, strconv.Itoa(n))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": result.Artifact.Filename}))

	return c.Blob(http.StatusOK, result.Artifact.MIMEType, result.Artifact.Data)
}

// Delete handles DELETE /transcripts/:id
// @Summary      Discard a transcript
// @Tags         Transcripts
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse  "Session not found"
// @Router       /transcripts/{id} [delete]
func (h *Transcript) Delete(c echo.Context) error {
	if err := h.transcripts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}
	return HandleSuccess(h.logger, c, nil)
}

// warningCount counts the joined markup errors of an export
func warningCount(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}

package handler

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	captionDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/caption"
	"github.com/johnquangdev/transcrypt/internal/adapter/presenter"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

// CaptionService is what the caption proxy needs from the captions usecase
type CaptionService interface {
	ListTracks(ctx context.Context, video string) (*entities.TrackList, error)
	FetchTrack(ctx context.Context, data, tlang string) ([]entities.CaptionLine, error)
}

// Caption proxies YouTube caption listing and download
type Caption struct {
	captions CaptionService
	logger   *zap.Logger
}

// NewCaptionHandler creates a new caption handler
func NewCaptionHandler(captions CaptionService, logger *zap.Logger) *Caption {
	return &Caption{
		captions: captions,
		logger:   logger,
	}
}

// ListTracks handles GET /captions
// @Summary      List caption tracks
// @Description  Lists the caption tracks and translation languages of a YouTube video
// @Tags         Captions
// @Produce      json
// @Param        video  query     string  true  "Video URL or id"
// @Success      200    {object}  common.SuccessResponse{data=caption.TrackListResponse}
// @Failure      400    {object}  common.ErrorResponse  "Invalid video"
// @Failure      403    {object}  common.ErrorResponse  "Access to YouTube was denied"
// @Failure      404    {object}  common.ErrorResponse  "Video not found"
// @Router       /captions [get]
func (h *Caption) ListTracks(c echo.Context) error {
	var req captionDTO.ListTracksRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	list, err := h.captions.ListTracks(c.Request().Context(), req.Video)
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToTrackListResponse(list))
}

// FetchTrack handles GET /captions/track
// @Summary      Download a caption track
// @Description  Downloads and parses one caption track, optionally machine translated
// @Tags         Captions
// @Produce      json
// @Param        data   query     string  true   "Track token from the track list"
// @Param        tlang  query     string  false  "Translation language code"
// @Success      200    {object}  common.SuccessResponse{data=caption.TrackLinesResponse}
// @Failure      400    {object}  common.ErrorResponse  "Missing parameter 'data'."
// @Failure      403    {object}  common.ErrorResponse  "Access to YouTube was denied."
// @Failure      404    {object}  common.ErrorResponse  "The YouTube video doesn't exist."
// @Failure      500    {object}  common.ErrorResponse  "We were unable to parse the transcript."
// @Router       /captions/track [get]
func (h *Caption) FetchTrack(c echo.Context) error {
	var req captionDTO.FetchTrackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if strings.TrimSpace(req.Data) == "" {
		return HandleError(h.logger, c, toAppError(c, ucErrors.ErrMissingData))
	}

	lines, err := h.captions.FetchTrack(c.Request().Context(), req.Data, req.TLang)
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToTrackLinesResponse(lines))
}

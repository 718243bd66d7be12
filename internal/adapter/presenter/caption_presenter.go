package presenter

import (
	captionDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/caption"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// ToTrackListResponse converts a TrackList entity to its response DTO
func ToTrackListResponse(list *entities.TrackList) *captionDTO.TrackListResponse {
	if list == nil {
		return nil
	}

	response := &captionDTO.TrackListResponse{
		VideoID:              list.VideoID,
		Title:                list.Title,
		Tracks:               make([]captionDTO.TrackResponse, 0, len(list.Tracks)),
		TranslationLanguages: make([]captionDTO.LanguageResponse, 0, len(list.TranslationLanguages)),
	}
	for _, t := range list.Tracks {
		response.Tracks = append(response.Tracks, captionDTO.TrackResponse{
			LanguageCode:   t.LanguageCode,
			Name:           t.Name,
			Kind:           string(t.Kind),
			IsTranslatable: t.IsTranslatable,
			Data:           t.Query,
		})
	}
	for _, l := range list.TranslationLanguages {
		response.TranslationLanguages = append(response.TranslationLanguages, captionDTO.LanguageResponse{
			Code: l.Code,
			Name: l.Name,
		})
	}
	return response
}

// ToTrackLinesResponse converts caption lines to their response DTO
func ToTrackLinesResponse(lines []entities.CaptionLine) *captionDTO.TrackLinesResponse {
	response := &captionDTO.TrackLinesResponse{
		Count: len(lines),
		Lines: make([]captionDTO.LineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		response.Lines = append(response.Lines, captionDTO.LineResponse{
			Start:    l.StartSeconds,
			Duration: l.Duration,
			Text:     l.Text,
		})
	}
	return response
}

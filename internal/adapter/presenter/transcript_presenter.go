package presenter

import (
	transcriptDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/transcript"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/transcript"
)

// ToTranscriptResponse converts a session to its response DTO
func ToTranscriptResponse(s *transcript.Session) *transcriptDTO.TranscriptResponse {
	if s == nil {
		return nil
	}
	snap := s.Snapshot()

	response := &transcriptDTO.TranscriptResponse{
		ID:         snap.ID,
		State:      string(snap.State),
		Timestamps: snap.Timestamps,
		Failure:    snap.Failure,
		VideoID:    snap.VideoID,
		Title:      snap.Title,
		ExpiresAt:  snap.ExpiresAt,
	}
	if snap.State == entities.SessionStateReady {
		response.HTML = s.HTML()
	}
	return response
}

// ToExportLinkResponse describes an artifact published to storage
func ToExportLinkResponse(url string, result *transcript.ExportResult) *transcriptDTO.ExportLinkResponse {
	response := &transcriptDTO.ExportLinkResponse{
		URL:      url,
		Filename: result.Artifact.Filename,
		MIMEType: result.Artifact.MIMEType,
		Size:     result.Artifact.Size(),
	}
	if result.Warning != nil {
		response.Warning = result.Warning.Error()
	}
	return response
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/export"
	"github.com/johnquangdev/transcrypt/internal/usecase/transcript"
)

var exportCmd = &cobra.Command{
	Use:   "export [video]",
	Short: "Export the transcript of a video",
	Long: `Fetch a caption track and export the transcript to a file.

Supported formats: pdf, word, text, markdown.

Examples:
  transcrypt export https://youtu.be/dQw4w9WgXcQ
  transcrypt export dQw4w9WgXcQ -f word --timestamps -o ./out
  transcrypt export dQw4w9WgXcQ --lang en --tlang fr -f markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "pdf", "Export format (pdf, word, text, markdown)")
	exportCmd.Flags().
		StringP("lang", "l", "", "Caption language code (defaults to the first track)")
	exportCmd.Flags().
		String("tlang", "", "Machine translate the captions into this language")
	exportCmd.Flags().
		BoolP("timestamps", "t", false, "Include timestamps")
	exportCmd.Flags().
		StringP("output", "o", ".", "Output directory")
	exportCmd.Flags().
		String("title", "", "Override the video title")
}

// exportOptions collects the export command flags
type exportOptions struct {
	Video      string
	Format     entities.ExportFormat
	Language   string
	TLang      string
	Title      string
	Timestamps bool
	OutputDir  string
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := entities.ParseExportFormat(formatName)
	if err != nil {
		return err
	}

	opts := exportOptions{Video: args[0], Format: format}
	opts.Language, _ = cmd.Flags().GetString("lang")
	opts.TLang, _ = cmd.Flags().GetString("tlang")
	opts.Title, _ = cmd.Flags().GetString("title")
	opts.Timestamps, _ = cmd.Flags().GetBool("timestamps")
	opts.OutputDir, _ = cmd.Flags().GetString("output")

	exporters := export.NewDefaultRegistry(export.Site{
		Name: cfg.Export.SiteName,
		URL:  cfg.Export.SiteURL,
	})

	path, result, err := exportTranscript(cmd.Context(), newCaptionService(cmd), exporters, opts)
	if err != nil {
		return err
	}
	if result.Warning != nil {
		logger.Warn("export.malformed_markup", zap.Error(result.Warning))
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: some lines were exported without their formatting.")
	}

	abs, _ := filepath.Abs(path)
	fmt.Fprintf(cmd.OutOrStdout(), "Transcript exported: %s\n", abs)
	return nil
}

// exportTranscript runs one transcript view offline: load, pick the variant, export, write
func exportTranscript(
	ctx context.Context,
	fetcher transcript.CaptionFetcher,
	exporters transcript.ExporterResolver,
	opts exportOptions,
) (string, *transcript.ExportResult, error) {
	session := transcript.NewSession(uuid.NewString())

	err := session.Load(ctx, transcript.LoaderFunc(func(ctx context.Context) (*entities.Transcript, error) {
		return fetcher.FetchTranscript(ctx, entities.TranscriptRequest{
			Video:       opts.Video,
			Language:    opts.Language,
			TranslateTo: opts.TLang,
			Title:       opts.Title,
		})
	}))
	if err != nil {
		return "", nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	if _, err := session.SetTimestamps(opts.Timestamps); err != nil {
		return "", nil, err
	}

	result, err := session.Export(exporters, entities.ExportRequest{Format: opts.Format})
	if err != nil {
		return "", nil, fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(opts.OutputDir, result.Artifact.Filename)
	if err := os.WriteFile(path, result.Artifact.Data, 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, result, nil
}

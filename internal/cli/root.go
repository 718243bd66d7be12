package cli

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/infrastructure/external/youtube"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	"github.com/johnquangdev/transcrypt/pkg/config"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "transcrypt",
	Short: "Read and export YouTube transcripts",
	Long: `Transcrypt lists the caption tracks of a YouTube video and exports
the transcript as PDF, Word, plain text or Markdown.

Settings are read from the environment and an optional .env file,
the same way the API server reads them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if verbose {
			logger, err = zap.NewDevelopment()
			return err
		}
		logger = zap.NewNop()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newCaptionService wires the caption source configured for the server
func newCaptionService(cmd *cobra.Command) *captions.CaptionService {
	client := &http.Client{Timeout: cfg.YouTube.HTTPTimeout}
	lister := youtube.NewLister(cmd.Context(), cfg, client, logger)
	return captions.NewCaptionService(lister,
		captions.WithHTTPClient(client),
		captions.WithTimedTextURL(cfg.YouTube.TimedTextURL),
		captions.WithLogger(logger),
	)
}

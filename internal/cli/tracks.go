package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/transcrypt/internal/adapter/presenter"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks [video]",
	Short: "List the caption tracks of a video",
	Long: `List the caption tracks of a YouTube video and the languages
it can be machine translated into.

Examples:
  transcrypt tracks https://www.youtube.com/watch?v=dQw4w9WgXcQ
  transcrypt tracks dQw4w9WgXcQ --json`,
	Args: cobra.ExactArgs(1),
	RunE: runTracks,
}

func init() {
	rootCmd.AddCommand(tracksCmd)

	tracksCmd.Flags().Bool("json", false, "Print the track list as JSON")
}

func runTracks(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	list, err := newCaptionService(cmd).ListTracks(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list tracks: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(presenter.ToTrackListResponse(list))
	}
	return writeTracks(cmd.OutOrStdout(), list)
}

// writeTracks prints the track list as an aligned table
func writeTracks(w io.Writer, list *entities.TrackList) error {
	fmt.Fprintf(w, "%s (%s)\n\n", list.Title, list.VideoID)
	if len(list.Tracks) == 0 {
		fmt.Fprintln(w, "No caption tracks.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANG\tKIND\tTRANSLATABLE\tNAME")
	for _, t := range list.Tracks {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", t.LanguageCode, t.Kind, t.IsTranslatable, t.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if n := len(list.TranslationLanguages); n > 0 {
		fmt.Fprintf(w, "\n%d translation languages available (use --tlang with export)\n", n)
	}
	return nil
}

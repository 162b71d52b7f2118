package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/content"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/filter"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/render"
)

var musicFlags struct {
	query      string
	recordType string
	output     string
}

var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "List released music",
	RunE:  runMusic,
}

func init() {
	f := musicCmd.Flags()
	f.StringVarP(&musicFlags.query, "query", "q", "", "match song name or artist")
	f.StringVar(&musicFlags.recordType, "type", "", "record type (single, album, ...)")
	f.StringVarP(&musicFlags.output, "output", "o", outputTable, "output format: table, json or yaml")
	rootCmd.AddCommand(musicCmd)
}

func runMusic(cmd *cobra.Command, _ []string) error {
	svc, c, err := newService(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	res := content.StrictMusic(svc)
	defer res.Close()
	res.Start(cmd.Context())
	state, err := res.Wait(cmd.Context())
	if err != nil {
		return err
	}
	if state.Failed() {
		return fmt.Errorf("failed to fetch music: %w", res.Err())
	}

	music := filter.Music(state.Data, filter.MusicCriteria{
		Query:      musicFlags.query,
		RecordType: musicFlags.recordType,
	})
	return printResult(cmd.OutOrStdout(), musicFlags.output, music, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "RELEASED\tNAME\tARTISTS\tTYPE\tLENGTH")
		for _, m := range music {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				m.ReleaseDate,
				m.Name,
				strings.Join(m.Artists, ", "),
				render.Title(m.RecordType),
				render.SongLength(m.SongLength),
			)
		}
	})
}

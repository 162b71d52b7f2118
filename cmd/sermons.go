package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/content"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/datefmt"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/filter"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

var sermonFlags struct {
	query  string
	from   string
	to     string
	tags   []string
	loads  int
	limit  int
	output string
}

var sermonsCmd = &cobra.Command{
	Use:   "sermons",
	Short: "List sermons matching the given filters",
	RunE:  runSermons,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every sermon tag",
	RunE:  runTags,
}

func init() {
	f := sermonsCmd.Flags()
	f.StringVarP(&sermonFlags.query, "query", "q", "", "match sermon name or long date")
	f.StringVar(&sermonFlags.from, "from", "", "earliest sermon date (YYYY-MM-DD)")
	f.StringVar(&sermonFlags.to, "to", "", "latest sermon date (YYYY-MM-DD)")
	f.StringSliceVar(&sermonFlags.tags, "tag", nil, "tag to match (repeatable, any matches)")
	f.IntVar(&sermonFlags.loads, "loads", 0, "number of load-more steps to reveal")
	f.IntVar(&sermonFlags.limit, "limit", 0, "entries to request from the CMS (default from config)")
	f.StringVarP(&sermonFlags.output, "output", "o", outputTable, "output format: table, json or yaml")

	tagsCmd.Flags().IntVar(&sermonFlags.limit, "limit", 0, "entries to request from the CMS (default from config)")
	tagsCmd.Flags().StringVarP(&sermonFlags.output, "output", "o", outputTable, "output format: table, json or yaml")

	rootCmd.AddCommand(sermonsCmd, tagsCmd)
}

func sermonLimit() int {
	if sermonFlags.limit > 0 {
		return sermonFlags.limit
	}
	return appConfig.Contentful.SermonLimit
}

// fetchSermons runs the strict hook once and returns its typed error.
func fetchSermons(cmd *cobra.Command) ([]models.Sermon, error) {
	svc, c, err := newService(cmd.Context(), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	res := content.StrictSermons(svc, sermonLimit())
	defer res.Close()
	res.Start(cmd.Context())
	state, err := res.Wait(cmd.Context())
	if err != nil {
		return nil, err
	}
	if state.Failed() {
		return nil, fmt.Errorf("failed to fetch sermons: %w", res.Err())
	}
	return state.Data, nil
}

func sermonCriteria() (filter.Criteria, error) {
	loc, err := appConfig.Location()
	if err != nil {
		return filter.Criteria{}, err
	}
	c := filter.Criteria{
		Query:    sermonFlags.query,
		Tags:     sermonFlags.tags,
		Location: loc,
	}
	if sermonFlags.from != "" {
		t, err := datefmt.Parse(sermonFlags.from, loc)
		if err != nil {
			return c, fmt.Errorf("--from: %w", err)
		}
		c.Range.From = &t
	}
	if sermonFlags.to != "" {
		t, err := datefmt.Parse(sermonFlags.to, loc)
		if err != nil {
			return c, fmt.Errorf("--to: %w", err)
		}
		c.Range.To = &t
	}
	return c, nil
}

func runSermons(cmd *cobra.Command, _ []string) error {
	criteria, err := sermonCriteria()
	if err != nil {
		return err
	}
	all, err := fetchSermons(cmd)
	if err != nil {
		return err
	}

	matched := filter.Sermons(all, criteria)
	pager := filter.PagerAfter(sermonFlags.loads)
	visible := filter.Page(matched, pager.Visible())

	err = printResult(cmd.OutOrStdout(), sermonFlags.output, visible, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "DATE\tNAME\tTAGS\tYOUTUBE")
		for _, s := range visible {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				datefmt.LongString(s.SermonDate, criteria.Location),
				s.Name,
				strings.Join(s.SermonTags, ", "),
				s.YouTubeLink,
			)
		}
	})
	if err != nil {
		return err
	}

	if pager.HasMore(len(matched)) && sermonFlags.output == outputTable {
		fmt.Fprintf(cmd.ErrOrStderr(), "showing %d of %d; rerun with --loads=%d for more\n",
			len(visible), len(matched), sermonFlags.loads+1)
	}
	return nil
}

func runTags(cmd *cobra.Command, _ []string) error {
	all, err := fetchSermons(cmd)
	if err != nil {
		return err
	}
	tags := filter.Tags(all)
	return printResult(cmd.OutOrStdout(), sermonFlags.output, tags, func(tw *tabwriter.Writer) {
		for _, tag := range tags {
			fmt.Fprintln(tw, tag)
		}
	})
}

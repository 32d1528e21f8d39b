package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"venue-calendar/internal/domain/event"
	reqdto "venue-calendar/internal/handler/dto/request"
	resdto "venue-calendar/internal/handler/dto/response"
	"venue-calendar/internal/infra/icsfeed"
	"venue-calendar/internal/usecase/queries"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("calctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "calctl",
		Usage: "Check booking conflicts and print calendar heat maps from an ICS feed.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ics", Usage: "ICS feed URL or file path", EnvVars: []string{"ICS_URL"}, Required: true},
			&cli.StringFlag{Name: "tz", Value: "UTC", Usage: "Time zone the feed is read in", EnvVars: []string{"ICS_TIMEZONE"}},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "Fetch and query timeout", EnvVars: []string{"QUERY_TIMEOUT"}},
			&cli.IntFlag{Name: "max-days", Value: 366, Usage: "Longest range heatmap accepts", EnvVars: []string{"QUERY_MAX_RANGE_DAYS"}},
			&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of text"},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
		},
		Before: func(c *cli.Context) error {
			slog.SetDefault(setupLogger(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			checkCommand(),
			heatmapCommand(),
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check a candidate booking window for conflicts.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD", Required: true},
			&cli.StringFlag{Name: "start", Usage: "HH:MM", Required: true},
			&cli.StringFlag{Name: "end", Usage: "HH:MM", Required: true},
			&cli.StringFlag{Name: "category", Usage: "Candidate category, e.g. wedding"},
			&cli.StringFlag{Name: "exclude", Usage: "ID of the event being edited"},
		},
		Action: func(c *cli.Context) error {
			req := reqdto.CheckConflictRequest{
				Date:  c.String("date"),
				Start: c.String("start"),
				End:   c.String("end"),
			}
			if c.IsSet("category") {
				category := c.String("category")
				req.Category = &category
			}
			if c.IsSet("exclude") {
				exclude := c.String("exclude")
				req.ExcludeID = &exclude
			}
			params, err := req.ToParams()
			if err != nil {
				return err
			}

			q, err := loadQueries(c)
			if err != nil {
				return err
			}

			result, err := q.CheckConflict(c.Context, params)
			if err != nil {
				return err
			}
			resp := resdto.FromConflictCheck(result)
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp)
			}
			printConflict(c.App.Writer, resp)
			if resp.HasConflict {
				return cli.Exit("", 2)
			}
			return nil
		},
	}
}

func heatmapCommand() *cli.Command {
	return &cli.Command{
		Name:  "heatmap",
		Usage: "Print per-day heat levels for an inclusive date range.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "YYYY-MM-DD", Required: true},
			&cli.StringFlag{Name: "to", Usage: "YYYY-MM-DD", Required: true},
		},
		Action: func(c *cli.Context) error {
			req := reqdto.CalendarAggregatesRequest{Start: c.String("from"), End: c.String("to")}
			start, end, err := req.ToDates()
			if err != nil {
				return err
			}

			q, err := loadQueries(c)
			if err != nil {
				return err
			}

			view, err := q.CalendarAggregates(c.Context, start, end)
			if err != nil {
				return err
			}
			resp := resdto.FromCalendarView(view)
			if c.Bool("json") {
				return writeJSON(c.App.Writer, resp)
			}
			printHeatmap(c.App.Writer, resp)
			return nil
		},
	}
}

// loadQueries fetches the feed once and serves every query from that snapshot.
func loadQueries(c *cli.Context) (queries.AvailabilityQueries, error) {
	loc, err := time.LoadLocation(c.String("tz"))
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.String("tz"), err)
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	store := icsfeed.NewStore(icsfeed.NewFetcher(c.String("ics"), nil), loc, 0, nil)
	if err := store.Refresh(ctx); err != nil {
		return nil, err
	}
	return queries.NewAvailabilityQueries(store, c.Duration("timeout"), c.Int("max-days")), nil
}

func printConflict(w io.Writer, resp *resdto.ConflictResponse) {
	cand := resp.Candidate
	fmt.Fprintf(w, "%s %s-%s (%s): ", cand.Date, cand.StartTime, cand.EndTime, cand.Category)
	if !resp.HasConflict {
		fmt.Fprintln(w, "available")
		return
	}
	fmt.Fprintf(w, "conflict [%s]\n", strings.Join(resp.Rules, ", "))
	for _, ev := range resp.OverlappingEvents {
		fmt.Fprintf(w, "  %s-%s  %-10s %-9s %s (%s)\n", ev.StartTime, ev.EndTime, ev.Category, ev.Status, ev.Title, ev.ID)
	}
}

func printHeatmap(w io.Writer, resp *resdto.CalendarResponse) {
	for _, day := range resp.Days {
		d, _ := event.ParseDate(day.Date)
		fmt.Fprintf(w, "%s %s  %-7s %d", day.Date, d.Weekday().String()[:3], day.HeatLevel, day.EventCount)
		if len(day.CategoryTally) > 0 {
			fmt.Fprintf(w, "  %s", formatTally(day.CategoryTally))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nfree=%d low=%d medium=%d high=%d blocked=%d\n",
		resp.Summary["free"], resp.Summary["low"], resp.Summary["medium"], resp.Summary["high"], resp.Summary["blocked"])
}

func formatTally(tally map[string]int) string {
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, tally[k])
	}
	return strings.Join(parts, " ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

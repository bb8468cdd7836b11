package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"eventbooking/config"
	"eventbooking/internal/adapters/remote"
	"eventbooking/internal/domain"
)

var (
	exportOut     string
	importFile    string
	importFromURL string
	importToken   string
	clearYes      bool
)

// dataCmd represents the data command group
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage the contents of the store",
	Long: `Seed, export, import, count and clear the records of the store
without going through the HTTP API.

Examples:
  # Insert the sample dataset into an empty store
  server data seed

  # Back up everything to a file
  server data export --out backup.json

  # Replay a backup, or pull one from a running instance
  server data import --file backup.json
  server data import --from-url https://api.example.com --token $TOKEN

  # Show record counts
  server data stats

  # Erase everything
  server data clear --yes`,
}

var dataSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the configured sample dataset when the store has no events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			return runSeed(ctx, a, cmd.OutOrStdout())
		})
	},
}

var dataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON snapshot of every record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if exportOut == "" || exportOut == "-" {
				return runExport(ctx, a, cmd.OutOrStdout())
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			if err := runExport(ctx, a, f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	},
}

var dataImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Add the records of a JSON snapshot to the store",
	Long: `Add the records of a snapshot to the store. Existing records are kept;
records with an id that already exists are overwritten.

The snapshot is read from --file (or stdin with "-"), or fetched from the
export route of another instance with --from-url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (importFile == "") == (importFromURL == "") {
			return errors.New("exactly one of --file or --from-url is required")
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if importFromURL != "" {
				fetcher := remote.NewHTTPFetcher(&http.Client{Timeout: time.Minute}, importToken)
				return runImportFromSource(ctx, a, fetcher, importFromURL, cmd.OutOrStdout())
			}
			var in io.Reader = cmd.InOrStdin()
			if importFile != "-" {
				f, err := os.Open(importFile)
				if err != nil {
					return fmt.Errorf("open %s: %w", importFile, err)
				}
				defer f.Close()
				in = f
			}
			return runImport(ctx, a, in, cmd.OutOrStdout())
		})
	},
}

var dataStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts per kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			return runStats(ctx, a, cmd.OutOrStdout())
		})
	},
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase every record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return errors.New("refusing to clear the store without --yes")
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			return runClear(ctx, a, cmd.OutOrStdout())
		})
	},
}

func init() {
	dataExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	dataImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "snapshot file, - for stdin")
	dataImportCmd.Flags().StringVar(&importFromURL, "from-url", "", "base URL of an instance to pull the snapshot from")
	dataImportCmd.Flags().StringVar(&importToken, "token", "", "bearer token for --from-url")
	dataClearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm erasing every record")

	dataCmd.AddCommand(dataSeedCmd, dataExportCmd, dataImportCmd, dataStatsCmd, dataClearCmd)
}

func withApp(ctx context.Context, fn func(context.Context, *app) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := newApp(ctx, cfg, config.NewLogger(cfg.Logging))
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func runSeed(ctx context.Context, a *app, w io.Writer) error {
	seeded, err := a.data.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintf(w, "seeded dataset %q\n", a.cfg.Seed.Dataset)
	} else {
		fmt.Fprintln(w, "store already has events, nothing seeded")
	}
	return nil
}

func runExport(ctx context.Context, a *app, w io.Writer) error {
	snapshot, err := a.data.Export(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}

func runImport(ctx context.Context, a *app, r io.Reader, w io.Writer) error {
	var snapshot domain.DatabaseExport
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return importSnapshot(ctx, a, &snapshot, w)
}

func runImportFromSource(ctx context.Context, a *app, fetcher domain.SnapshotFetcher, baseURL string, w io.Writer) error {
	snapshot, err := fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return err
	}
	return importSnapshot(ctx, a, snapshot, w)
}

func importSnapshot(ctx context.Context, a *app, snapshot *domain.DatabaseExport, w io.Writer) error {
	summary, err := a.data.Import(ctx, snapshot)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "imported %d venues, %d users, %d packages, %d events, %d registrations\n",
		summary.Venues, summary.Users, summary.Packages, summary.Events, summary.Registrations)
	return nil
}

func runStats(ctx context.Context, a *app, w io.Writer) error {
	stats, err := a.data.Statistics(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCOUNT")
	fmt.Fprintf(tw, "users\t%d\n", stats.Users)
	fmt.Fprintf(tw, "events\t%d\n", stats.Events)
	fmt.Fprintf(tw, "venues\t%d\n", stats.Venues)
	fmt.Fprintf(tw, "packages\t%d\n", stats.Packages)
	fmt.Fprintf(tw, "registrations\t%d\n", stats.Registrations)
	fmt.Fprintf(tw, "total\t%d\n", stats.TotalRecords)
	return tw.Flush()
}

func runClear(ctx context.Context, a *app, w io.Writer) error {
	if err := a.data.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "all data cleared")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	adapthttp "habitlog/internal/adapter/http"
	"habitlog/internal/adapter/kvblob"
	"habitlog/internal/adapter/memory"
	"habitlog/internal/adapter/postgres"
	"habitlog/internal/adapter/sharedir"
	"habitlog/internal/adapter/sqlite"
	"habitlog/internal/app"
	"habitlog/internal/config"
	"habitlog/internal/domain"
)

var (
	cfgPath string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "habitlog",
	Short: "habitlog tracks daily water, exercise and calorie records",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var (
	exportOut string
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write the current records to " + app.ExportFileName,
		RunE:  runExport,
	}
)

var (
	listSort string
	listCmd  = &cobra.Command{
		Use:   "list",
		Short: "Print records in display order",
		RunE:  runList,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a habitlog.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "directory to write the export into (defaults to export.dir)")
	listCmd.Flags().StringVar(&listSort, "sort", string(domain.SortMostRecent), "most-recent or highest-water")
	rootCmd.AddCommand(serveCmd, exportCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore builds the configured backend and a loaded record store.
func openStore(ctx context.Context, cfg *config.Config, metrics *app.Metrics) (*app.RecordStore, func(), error) {
	var (
		kv      kvblob.KV
		cleanup = func() {}
	)
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.Open(cfg.Storage.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres open: %w", err)
		}
		kv, cleanup = db, func() { _ = db.Close() }
	case "memory":
		kv = memory.New()
	default:
		db, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite open: %w", err)
		}
		kv, cleanup = db, func() { _ = db.Close() }
	}

	store := app.NewRecordStore(kvblob.New(kv), app.NewChangeBus(), logger, metrics)
	store.Load(ctx)
	return store, cleanup, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := app.NewMetrics(registry)

	store, cleanup, err := openStore(cmd.Context(), cfg, metrics)
	if err != nil {
		return err
	}
	defer cleanup()

	h := adapthttp.New(store, app.NewExporter(), logger, cfg.WebDir, registry).Handler()
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	store, cleanup, err := openStore(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	dir := cfg.Export.Dir
	if exportOut != "" {
		dir = exportOut
	}
	delivery := sharedir.New(dir)

	err = app.NewExporter().ExportTo(cmd.Context(), store.All(), delivery)
	switch {
	case errors.Is(err, app.ErrNothingToExport):
		fmt.Println("no records to export")
		return nil
	case err != nil:
		return err
	}
	fmt.Printf("wrote %s\n", delivery.Path(app.ExportFileName))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	store, cleanup, err := openStore(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	records := app.Project(store.All(), domain.ParseSortMode(listSort))
	if len(records) == 0 {
		fmt.Println("no records")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tWATER\tEXERCISE\tCALORIES")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\n", r.ID, r.Date, r.Water, r.Exercise, r.Calories)
	}
	return w.Flush()
}

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sornchai/winnow/internal/config"
	"github.com/sornchai/winnow/internal/logging"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/output"
	outfile "github.com/sornchai/winnow/internal/output/file"
	"github.com/sornchai/winnow/internal/output/multi"
	"github.com/sornchai/winnow/internal/output/stdout"
	"github.com/sornchai/winnow/internal/pipeline"
	"github.com/sornchai/winnow/internal/source"
	"github.com/sornchai/winnow/internal/summary"
)

func newClassifyCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an item batch and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Source.Provider, "source", cfg.Source.Provider, "item source: stdin or file")
	f.StringVarP(&cfg.Source.Path, "input", "i", cfg.Source.Path, "input path for the file source")
	f.StringVar(&cfg.Engine.Taxonomy, "taxonomy", cfg.Engine.Taxonomy, "built-in taxonomy: general or brandpage")
	f.StringVar(&cfg.Engine.Profile, "profile", cfg.Engine.Profile, "classify with a stored profile instead of a built-in taxonomy")
	f.IntVar(&cfg.Engine.TopN, "top", cfg.Engine.TopN, "summary entries per category")
	f.IntVar(&cfg.Engine.Limit, "limit", cfg.Engine.Limit, "max items to classify (0 = all)")
	f.IntVar(&cfg.Engine.Workers, "workers", cfg.Engine.Workers, "parallel classification workers")
	f.StringVarP(&cfg.Output.Path, "out", "o", cfg.Output.Path, "also write the report to this file")
	f.BoolVar(&cfg.Output.Pretty, "pretty", cfg.Output.Pretty, "indent report JSON")
	return cmd
}

func runClassify(cmd *cobra.Command, cfg *config.Config) error {
	logging.Init(true, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := resolveEngine(cfg)
	if err != nil {
		return err
	}

	provider := cfg.Source.Provider
	if cfg.Source.Path != "" {
		provider = "file"
	}
	ctor, err := source.Get(provider)
	if err != nil {
		return err
	}
	src, err := ctor(source.Config{Path: cfg.Source.Path})
	if err != nil {
		return err
	}

	items, err := src.Items(ctx)
	if err != nil {
		return err
	}
	slog.Debug("loaded items", "source", provider, "count", len(items))

	pipe := pipeline.New(eng,
		pipeline.WithLimit(cfg.Engine.Limit),
		pipeline.WithWorkers(cfg.Engine.Workers),
	)
	result, err := pipe.Run(ctx, items)
	if err != nil {
		return err
	}

	report := model.Report{
		TotalItems:      result.TotalItems,
		ClassifiedItems: result.Items,
		Summary:         summary.Summarize(result.Items, eng.Registry(), cfg.Engine.TopN),
	}

	out := buildOutput(cfg)
	defer out.Close()
	if err := out.Write(ctx, report); err != nil {
		return err
	}

	slog.Info("classification complete", "items", result.TotalItems)
	return nil
}

func buildOutput(cfg *config.Config) output.Output {
	outs := []output.Output{stdout.New(cfg.Output.Pretty)}
	if cfg.Output.Path != "" {
		outs = append(outs, outfile.New(cfg.Output.Path, outfile.WithPretty(cfg.Output.Pretty)))
	}
	if len(outs) == 1 {
		return outs[0]
	}
	return multi.New(outs...)
}

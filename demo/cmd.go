package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorustyt/meshflat/common/logger"
	"github.com/gorustyt/meshflat/config"
	"github.com/gorustyt/meshflat/debug_utils"
	"github.com/gorustyt/meshflat/simplify"
)

type options struct {
	configPath string
	in         string
	shape      string
	size       int
	out        string
	format     string
	reportPath string
	passes     int
	workers    int
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "meshflat",
		Short:        "Remove redundant vertices from the flat regions of a triangle mesh",
		SilenceUsage: true,
	}
	root.AddCommand(newSimplifyCmd(), newGenerateCmd())
	return root
}

func addInputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.shape, "shape", "grid", "sample surface: grid, ridges, fold or box")
	cmd.Flags().IntVar(&opts.size, "size", 8, "grid vertices per side, or box side length")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: obj, bin or pb (default from the output extension)")
}

func newGenerateCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a sample surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sampleMesh(opts.shape, opts.size)
			if err != nil {
				return err
			}
			return writeMesh(m, opts)
		},
	}
	addInputFlags(cmd, opts)
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newSimplifyCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Simplify a mesh file or a sample surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimplify(cmd, opts)
		},
	}
	addInputFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "input mesh dump (.bin or .pb); a sample surface when empty")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write the pass reports, protobuf encoded, to this file")
	cmd.Flags().IntVar(&opts.passes, "passes", config.DefaultMaxPasses, "maximum number of passes")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "goroutines planning flat parts")
	return cmd
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.NewConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("passes") {
		cfg.MaxPasses = opts.passes
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}

func runSimplify(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	var m *simplify.Mesh
	if opts.in != "" {
		m, err = readMesh(opts.in)
	} else {
		m, err = sampleMesh(opts.shape, opts.size)
	}
	if err != nil {
		return err
	}
	log.Info("mesh loaded",
		zap.String("in", opts.in),
		zap.Int("verts", m.VertexCount()),
		zap.Int("faces", m.FaceCount()))

	out, reports, err := simplify.Run(cmd.Context(), m, cfg, log)
	debug_utils.LogReports(log, reports)
	if err != nil {
		log.Error("simplify failed", zap.Error(err))
		return err
	}
	log.Info("mesh simplified",
		zap.Int("verts", out.VertexCount()),
		zap.Int("faces", out.FaceCount()))

	if opts.reportPath != "" {
		if err := os.WriteFile(opts.reportPath, encodeReports(reports), 0o644); err != nil {
			return errors.WithStack(err)
		}
	}
	if opts.out == "" {
		return nil
	}
	return writeMesh(out, opts)
}

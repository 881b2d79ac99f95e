package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/server"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/session"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			sheet, err := cfg.Sheet()
			if err != nil {
				return err
			}

			conv, err := kargo.NewConverter(cfg.ConverterOptions()...)
			if err != nil {
				return err
			}
			defer conv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				Store:          session.NewStore(cfg.Session.TTL.Std()),
				Renderer:       kargo.NewPrinter(conv, sheet),
				Parser:         shipment.NewParser(shipment.WithLogger(logger)),
				Logger:         logger,
				AllowedOrigins: cfg.Server.AllowedOrigins,
				PDFRate:        cfg.Server.PDFRate,
				PDFBurst:       cfg.Server.PDFBurst,
				MaxUpload:      cfg.Server.MaxUpload,
				SweepInterval:  cfg.Session.SweepInterval.Std(),
			})
			return srv.Run(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

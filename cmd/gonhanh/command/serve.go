package command

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gonhanh/internal/app"
)

var (
	serveSocket string

	Serve = &cobra.Command{
		Use:   "serve",
		Short: "Serves line conversions on a unix socket until interrupted.",
		Args:  cobra.NoArgs,
		RunE:  commandServe,
	}
)

func commandServe(cmd *cobra.Command, args []string) error {
	path := settings.SocketPath
	if cmd.Flags().Changed("socket") {
		path = serveSocket
	}
	if path == "" {
		return fmt.Errorf("no socket path configured")
	}
	server, err := app.StartTranslationServer(path, app.NewTranslator(engineOptions()), logger)
	if err != nil {
		return err
	}
	defer server.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case err, ok := <-server.Err():
		if ok && err != nil {
			return fmt.Errorf("translation server: %w", err)
		}
		return nil
	case sig := <-sigs:
		logger.Info("shutting down", "signal", sig.String())
		return nil
	}
}

func init() {
	Serve.Flags().StringVar(&serveSocket, "socket", "", "unix socket to listen on")
	Root.AddCommand(Serve)
}

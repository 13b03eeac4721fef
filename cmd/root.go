package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cartCmd "github.com/Alturino/computer-store/cart/cmd"
	"github.com/Alturino/computer-store/internal/common"
	"github.com/Alturino/computer-store/internal/log"
)

func Start() {
	logger := log.InitLogger("/var/log/computer-store.log").
		With().
		Str(log.KeyAppName, common.AppMainComputerStore).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "computer-store"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "cart",
		Short: "Run cart service",
		Run: func(cmd *cobra.Command, args []string) {
			cartCmd.RunCartService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}

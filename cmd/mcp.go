package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/api"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the catalog and the recommender as MCP tools over stdio",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// stdout belongs to the protocol.
		logger, config := setup("stderr")

		deps, err := newAPIDeps(ctx, config, logger)
		if err != nil {
			logger.Fatal("initializing the mcp server", zap.Error(err))
		}

		stdio := server.NewStdioServer(api.NewMCPServer(deps, version))
		stdio.SetErrorLogger(zap.NewStdLog(logger.Named("mcp")))

		logger.Info("starting the mcp server on stdio", zap.String("version", version))

		if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			logger.Fatal("serving mcp", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

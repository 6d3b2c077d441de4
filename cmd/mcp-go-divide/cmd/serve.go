package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-divide/pkg/logger"
	"github.com/sunfmin/mcp-go-divide/pkg/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the divide tool over MCP stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Log.File != "" {
		logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logger.Warn("Failed to set up log file", "error", err, "file", cfg.Log.File)
		} else {
			defer logFile.Close()
			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			if err := logger.Configure(level, io.MultiWriter(os.Stderr, logFile)); err != nil {
				return err
			}
		}
	}

	logger.Info("Starting MCP Go Divide", "version", Version, "name", cfg.Server.Name)

	divideServer := mcp.NewDivideServer(cfg, Version)

	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(divideServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		return fmt.Errorf("serving stdio: %w", err)
	}
	return nil
}

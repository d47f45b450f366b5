// Command checker validates a delivery path from the command line.
//
//	checker '[[1,2],[3,4]]' '[1,3,2,4]'
//
// The result is printed to stdout as indented JSON. Only a wrong argument count
// exits with a non-zero status.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deliverychecker/cmd"
	"deliverychecker/internal/adapters/in/wire"
	"deliverychecker/internal/core/application/usecases/commands"
)

const defaultLogLevel = "warn"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	logger := newLogger(getenv, stderr)

	if len(args) != 2 {
		logger.DebugContext(ctx, "Wrong argument count", "count", len(args))
		if err := wire.Encode(stdout, commands.NewInvalidArgumentsResult(), false); err != nil {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	result := check(ctx, args[0], args[1], logger)

	if err := wire.Encode(stdout, result, true); err != nil {
		logger.ErrorContext(ctx, "Failed to write result", "error", err)
		return 1
	}
	return 0
}

func check(ctx context.Context, rawDeliveries, rawPath string, logger *slog.Logger) commands.Result {
	deliveries, path, err := wire.Decode([]byte(rawDeliveries), []byte(rawPath))
	if err != nil {
		logger.DebugContext(ctx, "Input rejected", "error", err)
		return commands.NewResultFromError(err)
	}

	command, err := commands.NewCheckRouteCommand(deliveries, path)
	if err != nil {
		return commands.NewResultFromError(err)
	}

	return commands.NewCheckRouteCommandHandler(logger).Handle(ctx, command)
}

func newLogger(getenv func(string) string, stderr io.Writer) *slog.Logger {
	value := getenv("LOG_LEVEL")
	if value == "" {
		value = defaultLogLevel
	}
	level, err := cmd.ParseLogLevel(value)
	logger := cmd.NewLogger(stderr, level)
	if err != nil {
		logger.Warn("Falling back to info level", "error", err)
	}
	return logger
}

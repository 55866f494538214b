package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/apkwrap/cmd"
	errUtils "github.com/cloudposse/apkwrap/errors"
	log "github.com/cloudposse/apkwrap/pkg/logger"
)

func main() {
	// Disable timestamp in logs so output is stable.
	log.Default().SetReportTimestamp(false)

	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the application and returns an exit code.
// This separation allows cleanup via defer before os.Exit in main().
func run() int {
	defer cmd.Cleanup()

	// SIGINT and SIGTERM cancel the context, which kills a running apktool.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if err == nil {
		return 0
	}

	config := errUtils.DefaultFormatterConfig()
	config.Verbose = log.GetLevel() <= log.DebugLevel
	os.Stderr.WriteString(errUtils.Format(err, config) + "\n")

	if ctx.Err() != nil {
		// 128 + SIGINT.
		return 130
	}

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}

package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/logging"
)

type loggingResult = logging.LogPathResult

// setupLogging configures logging from config, environment and CLI flags and
// attaches the logger and a trace ID to the command context.
func setupLogging(cmd *cobra.Command) *loggingResult {
	loggingCfg := config.GetLoggingConfig()
	interactive := cmd.Annotations[annotationInteractive] == "true"

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	switch {
	case interactive && !result.UsingFile:
		// Nothing may write to the terminal the TUI draws on.
		result.Logger = zerolog.Nop()
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed && loggingCfg.File != "":
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return &result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *loggingResult) error {
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

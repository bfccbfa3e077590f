// Package logger builds configured *slog.Logger instances via functional
// options: output format (text or json), minimum level, output destination
// and static attributes.
//
// The CLI logs diagnostics (observed dictionary size, computed entropy) to
// stderr through a logger built here, keeping stdout clean for the generated
// passphrase itself.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("selection complete", "population", seen, "entropy", bits)
package logger

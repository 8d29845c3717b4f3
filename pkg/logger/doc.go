// Package logger is a thin factory around log/slog with functional options and
// a handful of helper attribute constructors.
//
// New builds a *slog.Logger backed by slog.NewJSONHandler or
// slog.NewTextHandler depending on the configured Format:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("attributes")),
//	)
//	log.Debug("validation failed",
//	    logger.Operation("validate"),
//	    logger.Attribute("schema"),
//	    logger.Error(err),
//	)
//
// Helper constructors such as Error, Component and Operation keep attribute
// keys consistent across packages. Error returns an empty attribute
// for a nil error, so it can be passed without a nil check.
//
// Discard returns a logger that drops everything; it is the default wherever
// a logger is optional.
package logger

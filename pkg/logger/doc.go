// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers with consistent key names.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "choreboard"),
//	    logger.WithContextExtractors(environment.LoggerExtractor(), logger.OperationExtractor()),
//	)
//	ctx = logger.WithOperation(ctx, "create_task")
//	log.ErrorContext(ctx, "operation failed", logger.Error(err), logger.Email(addr))
//
// Development and test environments log text at debug level, staging and
// production log JSON at info level. Attribute helpers return an empty Attr
// for nil or empty values, so they can be passed unconditionally. Email masks
// the address before it is recorded.
package logger

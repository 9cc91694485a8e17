// Package logger builds log/slog loggers for the service.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout) and wraps the handler in a decorator that copies
// request-scoped values from the context into every record:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "certmailer"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "certificate sent", logger.Email(to), logger.Duration(d))
//
// The attribute helpers keep key names consistent across packages. Email
// masks the local part of the address so logs never carry full recipient
// addresses.
package logger

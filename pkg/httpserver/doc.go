// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown, and provides liveness/readiness probe handlers.
//
// Run blocks until its context is done. Pair it with signal.NotifyContext:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen errors wrap ErrStart and drain failures wrap ErrShutdown.
package httpserver

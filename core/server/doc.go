// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
// Basic usage:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Config is filled from SERVER_* environment variables through core/config.
// Start binds the listener before blocking, so a busy port fails fast with
// ErrListen. Run returns nil after a cancellation-driven shutdown.
package server

// Package logger provides adapters for popular logger libraries to work with
// table's Logger interface.
//
// The adapters allow an existing application logger to be passed into a
// rosterdb Table without boilerplate. Note that the standard library's
// slog.Logger already implements table.Logger directly.
//
// Example with zap:
//
//	zl, _ := zap.NewProduction()
//
//	tbl, err := table.New(&table.Options{
//	    Logger: logger.NewZap(zl),
//	})
package logger

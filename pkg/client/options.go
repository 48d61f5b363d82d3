package client

import "github.com/bft-labs/apiclient/pkg/log"

// Logger is the structured logger a Client reports to. It must also accept
// resty's printf-style diagnostics; both loggers in pkg/log do.
type Logger interface {
	log.Logger
	Debugf(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	logger Logger
	debug  bool
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets the logger for construction and transport diagnostics.
// If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDebug logs a dump of every request and response at debug level.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

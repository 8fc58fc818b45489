// Package logger provides the structured logging used by the LedgerPay
// client.
//
// It is a thin wrapper around zerolog. The client is silent by default
// (Nop); callers opt in by supplying a logger in the transport
// configuration:
//
//	cfg := transport.Config{
//	    Endpoint:  "https://api.ledgerpay.example",
//	    AuthToken: token,
//	    Logger:    logger.New(logger.Config{Level: "debug"}),
//	}
package logger

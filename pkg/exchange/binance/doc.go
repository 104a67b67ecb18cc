// Package binance implements the Binance USDⓈ-M Futures tools.
//
// The package includes:
//   - Tools: the declarative table of futures operations
//   - Client: a core.Executor that signs, sends and decodes one call
//
// Example usage:
//
//	client, err := binance.New(config, binance.WithLogger(logger))
//	result, err := client.Execute(ctx, tool, core.Params{"symbol": "BTCUSDT"})
package binance

// Command binance-futures-mcp serves Binance USDⓈ-M Futures account and order
// operations as MCP tools over stdio.
package main

func main() {
	Execute()
}

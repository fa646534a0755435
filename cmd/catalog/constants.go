package main

// Log messages
const (
	LogMsgRunFailed        = "Catalog run failed"
	LogMsgPackageFallback  = "Content package unavailable, scanning item directory"
	LogMsgTextsUnavailable = "Texts unavailable, using identifiers as names"
	LogMsgGameVersion      = "Game version"
	LogMsgExportIncomplete = "Export incomplete"
	LogMsgMetricsWritten   = "Metrics written"
)

package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, OS reveal, native text sharing and playlist expansion via ytdlp.

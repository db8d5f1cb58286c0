package i18n

// Package i18n holds the display strings of the client in its two built-in
// locales. Deployments may override any string; the rest of the code treats
// texts as opaque values looked up by key.

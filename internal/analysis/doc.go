package analysis

// Package analysis implements the transport to the prosody backend. A Batch
// knows its endpoint and how to encode itself (JSON link batch or multipart
// file batch); the Client sends any Batch and classifies the outcome into
// results, ServerError or TransportError.

package model

// Package model defines domain data structures used across the app: analysis
// targets, request batches, server results and the submission state machine.
// Structures mirror the backend JSON schema and carry no UI dependencies.

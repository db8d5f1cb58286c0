// Package headless adapts the submission controller to a terminal: sources
// read command-line arguments, results are printed as styled cards.
package headless

// Package submit drives one form submission from input collection to
// rendered results or a single notification. The same Controller serves the
// link form and the upload form; only the Source differs.
package submit

// Package table holds the fixed-capacity, signature-tagged handler table
// that backs the guided-section registry: registered GUIDs and their
// get-info/decode handler pairs in index-aligned sequences.
package table

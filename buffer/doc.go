// Package buffer implements the document model behind the notepad text
// surface: grapheme-accurate lines, a cursor, an optional selection and a
// snapshot undo/redo history.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer

// Package model defines the core data types for document reconstruction:
// geometry primitives (Point, Rect), the closed fragment and header type
// sets, and the Fragment record produced from upstream layout-engine output.
//
// Coordinates are integer page pixels with the origin at the top-left of the
// page: x grows rightward, y grows downward. A Rect is described by its four
// corner points but treated as axis-aligned for all arithmetic.
package model

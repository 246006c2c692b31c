// Package scale maps domain values (dates, numbers) to pixel coordinates and back.
//
// Both scales interpolate linearly and never clamp: inputs outside the domain map
// outside the range. A degenerate domain maps every input to the middle of the range.
package scale

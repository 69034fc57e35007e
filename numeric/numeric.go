// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues and the
// closed-form geometry Fortune's algorithm evaluates at every beach-line
// comparison and circle event.
//
// # Overview
//
// The numeric package contains a set of helper functions designed for
// common numerical operations that arise in computational geometry and
// other domains where precision is important.
//
// # Features
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
//   - Sweep-line geometry: Breakpoint computes where two parabolic arcs
//     on the beach line meet, and Circumcenter computes the centre and
//     radius of the circle through three points (or reports that they are
//     collinear).
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric

// Package mathutil provides the calculator, Pascal's triangle rows and factorial.
//
// All functions are pure; failures are reported as errors wrapping one of the
// package sentinels so callers can match them with errors.Is.
package mathutil

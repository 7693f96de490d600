// Package geomath provides great-circle distance math shared by the
// trip segmenter and the trip statistics calculator.
package geomath

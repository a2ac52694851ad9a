// Package noisemap stores sampled noise in a 2-D grid and fills that grid
// from a model.
//
// A NoiseMap is usually a terrain height map or the input to an image
// renderer. Builders walk the map row by row, sampling a plane, sphere or
// cylinder model at evenly spaced surface coordinates. Rows are built in
// parallel.
package noisemap

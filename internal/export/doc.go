// Package export writes rendered images and raw noise maps to disk.
//
// Two formats are supported: "png", a rendered colour image, and "nmap", the
// raw float64 values of a noise map encoded with msgpack and compressed
// with zstd so that a map can be reloaded without resampling.
package export

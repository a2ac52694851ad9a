// Package task turns `render` blocks into runnable jobs. A Task samples its
// source module over a model into a noise map, renders the map to an image
// when the output format needs one, and writes the result to disk.
package task

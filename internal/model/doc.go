// Package model maps simple geometric surfaces onto a noise module.
//
// A model converts surface coordinates (latitude and longitude on a sphere,
// an angle and height on a cylinder, and so on) into a 3-D point and samples
// the attached module there. Models are what noise map builders iterate
// over.
package model

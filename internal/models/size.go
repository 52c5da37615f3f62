package models

// Size represents the pixel dimensions of the requested map image.
type Size struct {
	Width  int // Width of the image, in pixels.
	Height int // Height of the image, in pixels.
}

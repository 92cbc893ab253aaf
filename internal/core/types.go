package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

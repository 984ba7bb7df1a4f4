package component

// Meteor — падающий метеор способности
type Meteor struct {
	X, Y, Z float64
	VY      float64
	Radius  float64
	Aoe     float64
	Alive   bool
}

package reducer

// Feroz keeps the live-point count constant (Feroz & Hobson 2009), the
// classical nested-sampling behavior with no live-point reduction.
type Feroz struct{}

// Next always returns state.CurrentNobjects.
func (Feroz) Next(state State) int {
	return state.CurrentNobjects
}

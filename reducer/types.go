package reducer

// State is the driver state a Reducer consults each iteration.
type State struct {
	// Iteration is the current iteration count t.
	Iteration int

	// CurrentNobjects is N_t, the live-point count going into this iteration.
	CurrentNobjects int

	// InitialNobjects is N_initial, the run's starting live-point count.
	InitialNobjects int

	// MinNobjects is the floor minN below which Nobjects must never fall.
	MinNobjects int

	// LogX is the current log prior mass log X_t.
	LogX float64

	// LogZ is the current log evidence log Z_t.
	LogZ float64

	// LogLMax is the maximum log-likelihood among the current live points.
	LogLMax float64
}

// Reducer decides the target live-point count for the next iteration.
type Reducer interface {
	// Next returns N_{t+1} in [minNobjects, CurrentNobjects].
	Next(state State) int
}

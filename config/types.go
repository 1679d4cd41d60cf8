package config

// File is the YAML document shape Load reads. Every field is optional
// except Priors; omitted numeric fields keep nested.NewConfig's defaults.
type File struct {
	Priors []PriorSpec `yaml:"priors"`

	InitialNobjects int `yaml:"initial_nobjects"`
	MinNobjects     int `yaml:"min_nobjects"`
	MaxDrawAttempts int `yaml:"max_draw_attempts"`

	NinitialIterationsWithoutClustering int `yaml:"ninitial_iterations_without_clustering"`
	NiterationsWithSameClustering       int `yaml:"niterations_with_same_clustering"`

	InitialEnlargementFraction float64 `yaml:"initial_enlargement_fraction"`
	ShrinkingRate              float64 `yaml:"shrinking_rate"`

	TerminationFactor float64 `yaml:"termination_factor"`

	Kmin         int     `yaml:"kmin"`
	Kmax         int     `yaml:"kmax"`
	Ntrials      int     `yaml:"ntrials"`
	RelTolerance float64 `yaml:"rel_tolerance"`

	Reducer string `yaml:"reducer"`
	Beta    float64 `yaml:"reducer_beta"`

	PrintOnTheScreen bool   `yaml:"print_on_the_screen"`
	OutputPathPrefix string `yaml:"output_path_prefix"`

	Seed int64 `yaml:"seed"`
}

// PriorSpec describes one dimension's prior. Kind is "uniform" (using Min,
// Max) or "normal" (using Mu, Sigma).
type PriorSpec struct {
	Kind  string  `yaml:"kind"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
}

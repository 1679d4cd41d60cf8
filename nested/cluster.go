package nested

import (
	"github.com/katalvlaran/multinest/ellipsoid"
	"github.com/katalvlaran/multinest/kmeans"
)

// buildEllipsoidSet clusters the live set's coordinates (k=1 when forceSingleCluster
// is true, otherwise model-selected over [cfg.Kmin,cfg.Kmax]) and builds the
// bounding ellipsoid.Set for the resulting clusters.
func buildEllipsoidSet(live []LivePoint, logX float64, cfg *Config, forceSingleCluster bool, seed int64) (*ellipsoid.Set, error) {
	data := make([][]float64, len(live))
	for i, p := range live {
		data[i] = p.Theta
	}

	var assignments []int
	var k int
	if forceSingleCluster || cfg.Kmax <= 1 {
		assignments = make([]int, len(data))
		k = 1
	} else {
		result, err := kmeans.Cluster(data, kmeans.Config{
			Kmin: cfg.Kmin, Kmax: cfg.Kmax, Ntrials: cfg.Ntrials,
			RelTolerance: cfg.RelTolerance, MaxIterations: 300, Seed: seed,
		})
		if err != nil {
			return nil, err
		}
		assignments = result.Assignments
		k = result.K
	}

	clusters := make([][][]float64, k)
	for i, theta := range data {
		c := assignments[i]
		clusters[c] = append(clusters[c], theta)
	}

	ellipsoidCfg := ellipsoid.Config{
		InitialEnlargementFactor: cfg.InitialEnlargementFraction,
		Alpha:                    cfg.ShrinkingRate,
		TotalObjects:             cfg.InitialNobjects,
	}

	set, _, err := ellipsoid.BuildSet(clusters, logX, ellipsoidCfg)
	if err != nil {
		return nil, err
	}
	return set, nil
}

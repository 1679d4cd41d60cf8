package ellipsoid

import "errors"

// BuildSet builds an Ellipsoid for each cluster in clusters (one slice of
// points per cluster, in cluster-index order), skipping clusters with too
// few points (ErrTooFewPoints) or none at all (ErrEmptyCluster), then
// assembles the overlap Set over the surviving ellipsoids.
//
// Returns the set plus the original cluster indices of the ellipsoids kept,
// in the same order as Set.Ellipsoids, so callers can map back to
// NpointsPerCluster / live-point membership.
func BuildSet(clusters [][][]float64, logX float64, cfg Config) (*Set, []int, error) {
	var kept []*Ellipsoid
	var keptIndices []int

	for clusterIdx, points := range clusters {
		e, err := New(points, logX, cfg)
		if err != nil {
			if errors.Is(err, ErrTooFewPoints) || errors.Is(err, ErrEmptyCluster) {
				continue
			}
			return nil, nil, err
		}
		kept = append(kept, e)
		keptIndices = append(keptIndices, clusterIdx)
	}

	set, err := NewSet(kept)
	if err != nil {
		return nil, nil, err
	}
	return set, keptIndices, nil
}

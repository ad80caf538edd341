package geo

// Ring is an ordered, closed polygon ring of [lon, lat] vertices.
type Ring [][2]float64

// ringContains reports whether the point (lon, lat) falls inside the ring,
// using ray casting: an edge counts as a crossing when the point's latitude
// lies between the edge endpoints (half-open, so shared vertices are not
// counted twice) and the point is left of the edge at that latitude. The
// half-open test also rejects edges with equal endpoint latitudes, so the
// intersection division below never sees a zero denominator.
func ringContains(lon, lat float64, ring Ring) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > lat) != (yj > lat) && lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ringsContain applies exterior/hole semantics: inside the first ring and
// not inside any of the following rings.
func ringsContain(lon, lat float64, rings []Ring) bool {
	if len(rings) == 0 || !ringContains(lon, lat, rings[0]) {
		return false
	}
	for _, hole := range rings[1:] {
		if ringContains(lon, lat, hole) {
			return false
		}
	}
	return true
}

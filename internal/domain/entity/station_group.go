package entity

// StationGroup maps a (station, sector) pair to an allotment group name.
// Reference data; read-only for the lifetime of a session.
type StationGroup struct {
	Group   string `json:"group" bson:"group"`
	Sector  string `json:"sector" bson:"sector"`
	Station string `json:"station" bson:"station"`
	Note    string `json:"ghiChu" bson:"ghiChu"`
}

// GroupIndex resolves allotment groups by exact (station, sector) match.
type GroupIndex map[string]StationGroup

// BuildGroupIndex indexes groups by normalized (station, sector). A station
// belongs to at most one group per sector; on duplicate rows the first wins.
func BuildGroupIndex(groups []StationGroup) GroupIndex {
	idx := make(GroupIndex, len(groups))
	for _, g := range groups {
		key := GroupKey(g.Station, g.Sector)
		if _, ok := idx[key]; !ok {
			idx[key] = g
		}
	}
	return idx
}

// Resolve returns the group name for a (station, sector) pair, or
// UnknownGroup when no entry matches. Never an error.
func (idx GroupIndex) Resolve(station, sector string) (string, bool) {
	if g, ok := idx[GroupKey(station, sector)]; ok {
		return g.Group, true
	}
	return UnknownGroup, false
}

// GroupKey builds the normalized lookup key for a (station, sector) pair.
func GroupKey(station, sector string) string {
	return Canon(station) + "|" + Canon(sector)
}

// UnknownGroup is assigned when a booking's station resolves to no
// StationGroup entry.
const UnknownGroup = "Unknown"

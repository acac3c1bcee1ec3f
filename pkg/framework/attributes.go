package framework

// AttributeKey names a transient score attached to a solution.
type AttributeKey string

const (
	AttrRank                    AttributeKey = "rank"
	AttrCrowdingDistance        AttributeKey = "crowding-distance"
	AttrKNNDistance             AttributeKey = "knn-distance"
	AttrHypervolumeContribution AttributeKey = "hv-contribution"
)

// Attributes is a small typed key/value store. Values written by a ranking
// or density pass are only valid until the owning population changes.
type Attributes struct {
	floats map[AttributeKey]float64
	ints   map[AttributeKey]int
}

func (a *Attributes) SetFloat(key AttributeKey, v float64) {
	if a.floats == nil {
		a.floats = make(map[AttributeKey]float64)
	}
	a.floats[key] = v
}

func (a *Attributes) Float(key AttributeKey) (float64, bool) {
	v, ok := a.floats[key]
	return v, ok
}

func (a *Attributes) SetInt(key AttributeKey, v int) {
	if a.ints == nil {
		a.ints = make(map[AttributeKey]int)
	}
	a.ints[key] = v
}

func (a *Attributes) Int(key AttributeKey) (int, bool) {
	v, ok := a.ints[key]
	return v, ok
}

func (a *Attributes) Delete(key AttributeKey) {
	delete(a.floats, key)
	delete(a.ints, key)
}

// Clear drops every attribute.
func (a *Attributes) Clear() {
	a.floats = nil
	a.ints = nil
}

func (a *Attributes) clone() Attributes {
	var c Attributes
	for k, v := range a.floats {
		c.SetFloat(k, v)
	}
	for k, v := range a.ints {
		c.SetInt(k, v)
	}
	return c
}

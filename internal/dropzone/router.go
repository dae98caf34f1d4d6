// Package dropzone routes drop events carrying a screen position and a list
// of file paths to the registered zone containing that position.
package dropzone

// Point is a screen coordinate.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned zone boundary.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Event is one drop: where it landed and which paths it carried. An event
// with no paths still routes; rejecting it is the consumer's business.
type Event struct {
	Paths    []string
	Position Point
}

// BoundsFunc reports a zone's current boundary. It is queried per event,
// never cached, so zones may move freely between drops.
type BoundsFunc func() Rect

type zone struct {
	bounds BoundsFunc
	id     string
}

// Router holds the registered zones. Zones are expected not to overlap;
// when they do, the earliest registration wins. That tie-break is
// incidental, not a contract.
type Router struct {
	zones []zone
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Register adds a zone and returns a function that removes it.
func (r *Router) Register(id string, bounds BoundsFunc) func() {
	r.zones = append(r.zones, zone{id: id, bounds: bounds})

	return func() {
		for i, z := range r.zones {
			if z.id == id {
				r.zones = append(r.zones[:i], r.zones[i+1:]...)
				return
			}
		}
	}
}

// Route resolves an event to the zone containing its position. Events
// landing outside every zone are discarded silently: ok is false and no
// consumer sees them.
func (r *Router) Route(evt Event) (id string, ok bool) {
	for _, z := range r.zones {
		if z.bounds().Contains(evt.Position) {
			return z.id, true
		}
	}
	return "", false
}

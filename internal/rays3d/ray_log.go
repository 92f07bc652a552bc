package rays3d

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit  Category = iota // ray struck a surface
	Miss                 // ray escaped to the background
)

type RayLog struct {
	Name      string
	Category  Category
	Origin    Point3
	Direction Vector3
	Row, Col  int  // pixel the ray was cast through
	Distance  Real // distance to the nearest hit, 0 for a miss
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, origin Point3, direction Vector3, row, col int, distance Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    origin,
		Direction: direction,
		Row:       row,
		Col:       col,
		Distance:  distance,
	})
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("Ray type %s: %d logs\n", k, len(cache.rays[k]))
	}
}

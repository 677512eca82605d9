package routes

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-route-loader/models"
)

// Order returns descs sorted by DynamicDepth, deepest literal prefix first.
// The sort is stable, so entries of equal depth keep discovery order.
// descs itself is not modified.
func Order(descs []models.RouteDescriptor) []models.RouteDescriptor {
	ordered := slices.Clone(descs)
	for i := range ordered {
		ordered[i].DynamicDepth = dynamicDepth(ordered[i].Segments)
	}

	slices.SortStableFunc(ordered, func(a, b models.RouteDescriptor) int {
		return cmp.Compare(b.DynamicDepth, a.DynamicDepth)
	})

	return ordered
}

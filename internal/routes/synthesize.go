// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-route-loader/models"
)

// pathVerbs collects what is authored for one path shape.
type pathVerbs struct {
	allowed    []string
	hasHead    bool
	hasOptions bool
}

// Synthesize adds the implicit verbs to an ordered list of real routes.
//
//   - A GET without an authored HEAD on the same path gets a synthetic HEAD
//     directly after it.
//   - Each path ends up with exactly one OPTIONS entry. An authored OPTIONS
//     keeps its position; otherwise a synthetic one follows the first real
//     entry of the path (and its synthetic HEAD, if any).
//   - OPTIONS entries advertise the path's real verbs in registration order,
//     with HEAD right after GET and without OPTIONS itself.
//
// Two entries binding the same verb to the same path shape ("/a/:x" and
// "/a/:y" share a shape) are rejected with ErrRouteCollision.
func Synthesize(descs []models.RouteDescriptor) ([]models.RouteDescriptor, error) {
	paths := make(map[string]*pathVerbs)
	owners := make(map[string]string, len(descs))

	for _, d := range descs {
		if owner, ok := owners[d.Key()]; ok {
			return nil, fmt.Errorf("%w: %s and %s both bind %s %s", ErrRouteCollision, owner, d.RawName, d.Method, d.Path())
		}
		owners[d.Key()] = d.RawName

		p, ok := paths[d.Shape()]
		if !ok {
			p = &pathVerbs{}
			paths[d.Shape()] = p
		}

		switch d.Method {
		case methodOption:
			p.hasOptions = true
		case methodHead:
			p.hasHead = true
		}
	}

	for _, d := range descs {
		p := paths[d.Shape()]
		switch d.Method {
		case methodOption:
		case methodHead:
			if !slices.Contains(p.allowed, methodHead) {
				p.allowed = append(p.allowed, methodHead)
			}
		case methodGet:
			p.allowed = append(p.allowed, methodGet)
			if !slices.Contains(p.allowed, methodHead) {
				p.allowed = append(p.allowed, methodHead)
			}
		default:
			p.allowed = append(p.allowed, d.Method)
		}
	}

	out := make([]models.RouteDescriptor, 0, len(descs)*2)
	optionsPlaced := make(map[string]bool, len(paths))

	for _, d := range descs {
		p := paths[d.Shape()]

		if d.Method == methodOption {
			d.AllowedMethods = slices.Clone(p.allowed)
			out = append(out, d)
			continue
		}

		out = append(out, d)

		if d.Method == methodGet && !p.hasHead {
			out = append(out, synthetic(d, methodHead, nil))
		}

		if !p.hasOptions && !optionsPlaced[d.Shape()] {
			out = append(out, synthetic(d, methodOption, slices.Clone(p.allowed)))
			optionsPlaced[d.Shape()] = true
		}
	}

	return out, nil
}

func synthetic(from models.RouteDescriptor, method string, allowed []string) models.RouteDescriptor {
	return models.RouteDescriptor{
		RawName:        from.RawName,
		Segments:       slices.Clone(from.Segments),
		Method:         method,
		DynamicDepth:   from.DynamicDepth,
		IsSynthetic:    true,
		AllowedMethods: allowed,
	}
}

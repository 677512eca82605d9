// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Segment is a single component of a route path.
type Segment struct {
	// Value is the literal text of the segment, or the parameter name
	// (without the leading ':') when Dynamic is true.
	Value string

	// Dynamic reports whether the segment matches any value at request time.
	Dynamic bool
}

// RouteDescriptor is the structured record of a discovered path+verb binding.
//
// Descriptors are created once at load time from directory contents and are
// never mutated after the synthesis stage hands them to the registrar.
type RouteDescriptor struct {
	// RawName is the on-disk entry name, e.g. "~users~:id~GET.js".
	// Synthetic entries carry the RawName of the route they were derived from.
	RawName string

	// Segments is the ordered list of path components.
	Segments []Segment

	// Method is the HTTP verb bound by this descriptor.
	Method string

	// DynamicDepth is the number of leading literal segments before the
	// first dynamic one, or len(Segments) when none is dynamic.
	DynamicDepth int

	// IsSynthetic is true for generated HEAD and OPTIONS entries.
	IsSynthetic bool

	// AllowedMethods is the advertised verb list of OPTIONS entries.
	AllowedMethods []string
}

// Path renders the descriptor path in its convention form, e.g. "/users/:id".
func (d RouteDescriptor) Path() string {
	return d.render(func(s Segment) string {
		if s.Dynamic {
			return ":" + s.Value
		}
		return s.Value
	})
}

// Pattern renders the descriptor path as a chi routing pattern, e.g. "/users/{id}".
func (d RouteDescriptor) Pattern() string {
	return d.render(func(s Segment) string {
		if s.Dynamic {
			return "{" + s.Value + "}"
		}
		return s.Value
	})
}

// Shape returns the path with every dynamic segment collapsed, so "/a/:x" and
// "/a/:y" share a shape. Two routes with the same shape match the same requests.
func (d RouteDescriptor) Shape() string {
	return d.render(func(s Segment) string {
		if s.Dynamic {
			return ":"
		}
		return s.Value
	})
}

// Key identifies the descriptor by method and path shape.
func (d RouteDescriptor) Key() string {
	return d.Method + " " + d.Shape()
}

func (d RouteDescriptor) render(segment func(Segment) string) string {
	if len(d.Segments) == 0 {
		return "/"
	}

	b := new(strings.Builder)
	for _, s := range d.Segments {
		b.WriteByte('/')
		b.WriteString(segment(s))
	}
	return b.String()
}

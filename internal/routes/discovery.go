package routes

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-route-loader/models"
)

// DefaultSuffix is the extension of route files when none is configured.
const DefaultSuffix = ".js"

const (
	separator    = "~"
	paramPrefix  = ":"
	methodHead   = "HEAD"
	methodGet    = "GET"
	methodOption = "OPTIONS"
)

// Methods lists the verbs a route file may name. Matching is case-sensitive.
var Methods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

// Discover lists the route files in dir of fsys, in lexical order.
//
// An entry is eligible when it is not a directory, starts with "~" and ends
// with suffix. Everything else is skipped without error. A directory that
// cannot be read yields ErrDirectoryRead.
func Discover(fsys fs.FS, dir, suffix string) ([]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDirectoryRead, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, separator) || !strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// DiscoverDir is Discover over the operating system directory dir.
func DiscoverDir(dir, suffix string) ([]string, error) {
	return Discover(os.DirFS(dir), ".", suffix)
}

// Parse turns a route file name into a descriptor.
//
//	Parse("~users~:id~GET.js", ".js")
//	// Segments: users, :id   Method: GET   DynamicDepth: 1
//
// The last "~" component is the verb and must be one of [Methods]. Empty
// components and bare ":" parameters are rejected with ErrInvalidRouteName.
func Parse(name, suffix string) (models.RouteDescriptor, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	base, ok := strings.CutSuffix(name, suffix)
	if !ok {
		return models.RouteDescriptor{}, fmt.Errorf("%w: %q does not end with %q", ErrInvalidRouteName, name, suffix)
	}
	base, ok = strings.CutPrefix(base, separator)
	if !ok {
		return models.RouteDescriptor{}, fmt.Errorf("%w: %q does not start with %q", ErrInvalidRouteName, name, separator)
	}

	parts := strings.Split(base, separator)
	method := parts[len(parts)-1]
	if !slices.Contains(Methods, method) {
		return models.RouteDescriptor{}, fmt.Errorf("%w: %q has unknown verb %q", ErrInvalidRouteName, name, method)
	}

	segments := make([]models.Segment, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		param, dynamic := strings.CutPrefix(part, paramPrefix)
		if part == "" || (dynamic && param == "") {
			return models.RouteDescriptor{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidRouteName, name)
		}
		segments = append(segments, models.Segment{Value: param, Dynamic: dynamic})
	}

	return models.RouteDescriptor{
		RawName:      name,
		Segments:     segments,
		Method:       method,
		DynamicDepth: dynamicDepth(segments),
	}, nil
}

// dynamicDepth counts the literal segments in front of the first parameter.
func dynamicDepth(segments []models.Segment) int {
	for i, s := range segments {
		if s.Dynamic {
			return i
		}
	}
	return len(segments)
}

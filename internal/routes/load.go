package routes

import (
	"errors"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-route-loader/models"
)

// Load runs discovery, parsing, ordering and synthesis over dir of fsys and
// returns the registration plan. Every invalid file name is reported.
func Load(fsys fs.FS, dir, suffix string) ([]models.RouteDescriptor, error) {
	names, err := Discover(fsys, dir, suffix)
	if err != nil {
		return nil, err
	}

	descs := make([]models.RouteDescriptor, 0, len(names))
	var errs []error
	for _, name := range names {
		desc, err := Parse(name, suffix)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		descs = append(descs, desc)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return Synthesize(Order(descs))
}

// LoadDir is Load over the operating system directory dir.
func LoadDir(dir, suffix string) ([]models.RouteDescriptor, error) {
	return Load(os.DirFS(dir), ".", suffix)
}

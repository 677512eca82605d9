package routes

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/MKhiriev/go-route-loader/models"
)

// HandlerFunc computes the response of a route. The returned value is
// written as JSON with status 200, or with the status of a [models.Result].
// Errors are written through the error responder; a *models.ErrorResponse
// keeps its own code.
type HandlerFunc func(r *http.Request) (any, error)

// Policy is the authentication policy of a route.
type Policy struct {
	// Auth runs the auth resolver before the handler.
	Auth bool `yaml:"auth"`

	// Private routes only accept signature credentials.
	Private bool `yaml:"private"`

	// Bypass lets requests without credentials through.
	Bypass bool `yaml:"bypass"`

	// Audience is the expected token audience, empty for the default.
	Audience string `yaml:"audience"`
}

// Handler is a named handler together with its policy.
type Handler struct {
	Name   string
	Func   HandlerFunc
	Policy Policy
}

// Option adjusts the policy of a handler being added.
type Option func(*Policy)

// Public disables authentication for the route.
func Public() Option {
	return func(p *Policy) { p.Auth = false }
}

// Private restricts the route to signature credentials.
func Private() Option {
	return func(p *Policy) { p.Private = true }
}

// AllowBypass accepts requests that carry no credentials.
func AllowBypass() Option {
	return func(p *Policy) { p.Bypass = true }
}

// Audience sets the token audience the route expects.
func Audience(audience string) Option {
	return func(p *Policy) { p.Audience = audience }
}

// Registry maps handler names to compiled-in handlers.
//
// Names default to the route file name, e.g. "~users~:id~GET.js"; a
// [Manifest] can point several files to the same handler and override
// policies without recompiling.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	manifest *Manifest
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Add registers fn under name. Handlers require authentication unless
// [Public] is given.
func (r *Registry) Add(name string, fn HandlerFunc, opts ...Option) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: handler needs a name and a function", ErrHandlerNotFound)
	}

	policy := Policy{Auth: true}
	for _, opt := range opts {
		opt(&policy)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, name)
	}
	r.handlers[name] = Handler{Name: name, Func: fn, Policy: policy}

	return nil
}

// MustAdd is Add that panics on error. Meant for package-level setup.
func (r *Registry) MustAdd(name string, fn HandlerFunc, opts ...Option) *Registry {
	if err := r.Add(name, fn, opts...); err != nil {
		panic(err)
	}
	return r
}

// UseManifest makes Resolve consult m first.
func (r *Registry) UseManifest(m *Manifest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifest = m
}

// Resolve finds the handler bound to a real route.
func (r *Registry) Resolve(desc models.RouteDescriptor) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := desc.RawName
	entry, inManifest := r.manifest.lookup(desc.RawName)
	if inManifest && entry.Handler != "" {
		name = entry.Handler
	}

	h, ok := r.handlers[name]
	if !ok {
		return Handler{}, fmt.Errorf("%w: %s for %s %s", ErrHandlerNotFound, name, desc.Method, desc.Path())
	}

	if inManifest {
		h.Policy = entry.apply(h.Policy)
	}

	return h, nil
}

// Names lists the registered handler names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

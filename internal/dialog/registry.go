package dialog

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultName is the name of the dialog returned by Registry.Default.
const DefaultName = "default"

// Registry maps dialog names to controllers, creating them on first use.
type Registry struct {
	opts []ControllerOption

	mu          sync.Mutex
	controllers map[string]*Controller
}

// NewRegistry returns an empty registry. opts are applied to every
// controller it creates.
func NewRegistry(opts ...ControllerOption) *Registry {
	return &Registry{
		opts:        opts,
		controllers: make(map[string]*Controller),
	}
}

// Get returns the controller for name, creating it if needed.
func (r *Registry) Get(name string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.controllers[name]
	if !ok {
		c = NewController(name, r.opts...)
		r.controllers[name] = c
	}
	return c
}

func (r *Registry) Default() *Controller {
	return r.Get(DefaultName)
}

// Names returns the registered dialog names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CloseAll closes every open dialog with a nil result and waits until all
// of them have finished closing.
func (r *Registry) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	controllers := make([]*Controller, 0, len(r.controllers))
	for _, c := range r.controllers {
		controllers = append(controllers, c)
	}
	r.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range controllers {
		g.Go(func() error {
			_, err := c.Close(nil).Wait(ctx)
			return err
		})
	}
	return g.Wait()
}

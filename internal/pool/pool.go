// Package pool implements the recycle pool backing the row window.
//
// Views are expensive to build relative to rebinding, so the window releases
// rows it trims back into the pool and the pool hands them out again on the
// next spawn. Reuse is LIFO: the most recently released view is the first
// one handed back out.
//
// Parenting is modelled explicitly: a Container stands in for a scene-graph
// node. A view is attached either to a live content container (spawned) or
// to the pool's holding container (recycled), never both. Double-releasing a
// view is a caller bug and is not defended against.
package pool

// View is the contract a pooled view must satisfy. Activate is called as a
// view leaves the pool, Deactivate as it returns.
type View interface {
	Activate()
	Deactivate()
}

// Container is an explicit parent registry for views. It replaces the
// implicit scene-graph reparenting a rendering framework would do.
type Container struct {
	name     string
	children []View
}

// NewContainer returns an empty container with a diagnostic name.
func NewContainer(name string) *Container {
	return &Container{name: name}
}

// Name returns the container's diagnostic name.
func (c *Container) Name() string { return c.name }

// Len returns the number of attached views.
func (c *Container) Len() int { return len(c.children) }

// Contains reports whether v is attached to this container.
func (c *Container) Contains(v View) bool {
	for _, child := range c.children {
		if child == v {
			return true
		}
	}
	return false
}

func (c *Container) attach(v View) {
	c.children = append(c.children, v)
}

func (c *Container) detach(v View) {
	for i, child := range c.children {
		if child == v {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Pool recycles views of a single concrete type.
type Pool[T View] struct {
	free    []T
	hold    *Container
	factory func() T
}

// New returns a pool whose holding container carries the given name and
// whose factory instantiates fresh views when the pool is empty.
func New[T View](name string, factory func() T) *Pool[T] {
	return &Pool[T]{
		hold:    NewContainer(name),
		factory: factory,
	}
}

// Acquire returns a view attached to into and activated. The most recently
// released view is reused when one is available, otherwise the factory runs.
func (p *Pool[T]) Acquire(into *Container) T {
	var v T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free = p.free[:n-1]
		p.hold.detach(v)
	} else {
		v = p.factory()
	}
	if into != nil {
		into.attach(v)
	}
	v.Activate()
	return v
}

// Release detaches v from its current container, deactivates it and parks it
// in the holding container. The caller must drop every reference implying
// the view is still live.
func (p *Pool[T]) Release(from *Container, v T) {
	if from != nil {
		from.detach(v)
	}
	v.Deactivate()
	p.hold.attach(v)
	p.free = append(p.free, v)
}

// Size returns the number of views currently parked in the pool.
func (p *Pool[T]) Size() int { return len(p.free) }

// Holding returns the pool's holding container.
func (p *Pool[T]) Holding() *Container { return p.hold }

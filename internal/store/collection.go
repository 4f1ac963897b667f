package store

// collection is an ordered set of records keyed by id. It is not safe for concurrent use; the
// Store guards it.
type collection[T any] struct {
	items []T
	id    func(T) string
	clone func(T) T
}

func newCollection[T any](id func(T) string, clone func(T) T) collection[T] {
	return collection[T]{id: id, clone: clone}
}

func (c *collection[T]) index(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, c.clone(item))
}

func (c *collection[T]) replace(item T) bool {
	i := c.index(c.id(item))
	if i < 0 {
		return false
	}
	c.items[i] = c.clone(item)
	return true
}

func (c *collection[T]) remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.clone(item))
	}
	return out
}

func (c *collection[T]) reset(items []T) {
	c.items = make([]T, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, c.clone(item))
	}
}

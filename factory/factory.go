package factory

// Number is any type the counter can step through.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Counter holds a running total that advances by a fixed step.
// A Counter is not safe for concurrent use.
type Counter[T Number] struct {
	value T
	step  T
}

// New returns a counter starting at start. The first call to Next returns start+step.
func New[T Number](start, step T) *Counter[T] {
	return &Counter[T]{value: start, step: step}
}

// Next adds the step to the running total and returns it.
func (c *Counter[T]) Next() T {
	c.value += c.step
	return c.value
}

func (c *Counter[T]) Step() T {
	return c.step
}

type Option[T Number] func(*Counter[T])

// WithStart sets the value the counter starts from. Defaults to 0.
func WithStart[T Number](v T) Option[T] {
	return func(c *Counter[T]) {
		c.value = v
	}
}

// WithStep sets the increment. Defaults to 1.
func WithStep[T Number](v T) Option[T] {
	return func(c *Counter[T]) {
		c.step = v
	}
}

// Factory returns a func that advances a fresh counter on every call.
// With no options it counts 1, 2, 3, ...
func Factory[T Number](opts ...Option[T]) func() T {
	c := New[T](0, 1)
	for _, opt := range opts {
		opt(c)
	}
	return c.Next
}

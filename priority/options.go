package priority

// options defines the configuration of a queue.
type options struct {
	capacity int // Number of live elements to preallocate room for
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity preallocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
	}
}

package seqbuffer

// options holds the construction time configuration of a SequentialBuffer
type options struct {
	growth   float64
	order    ByteOrder
	observer Observer
}

func defaultOptions() options {
	return options{
		growth: defaultGrowthFactor,
		order:  defaultOrder,
	}
}

// Option configures a SequentialBuffer at construction.
type Option func(*options)

// WithGrowthFactor sets the factor the capacity is multiplied by when a write
// does not fit. 0 disables growth, any other value must be greater than 1.
func WithGrowthFactor(factor float64) Option {
	return func(o *options) { o.growth = factor }
}

// WithAutoGrow is the boolean shorthand for WithGrowthFactor,
// true doubles the capacity and false disables growth.
func WithAutoGrow(enable bool) Option {
	return func(o *options) { o.growth = growthFactorFromBool(enable) }
}

// WithByteOrder sets the initial byte order.
func WithByteOrder(order ByteOrder) Option {
	return func(o *options) { o.order = order }
}

// WithObserver attaches an Observer notified of reservations and growth.
func WithObserver(observer Observer) Option {
	return func(o *options) { o.observer = observer }
}

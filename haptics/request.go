package haptics

// Request is a single perform call. It is built per call and not retained.
type Request struct {
	Pattern Pattern
	Time    PerformanceTime
}

// RequestOption customizes a Request.
type RequestOption func(*Request)

// WithPattern sets the feedback pattern.
func WithPattern(p Pattern) RequestOption {
	return func(r *Request) { r.Pattern = p }
}

// At sets the performance time.
func At(t PerformanceTime) RequestOption {
	return func(r *Request) { r.Time = t }
}

// NewRequest returns a Request with Generic pattern and Default timing,
// then applies opts.
func NewRequest(opts ...RequestOption) Request {
	r := Request{Pattern: Generic, Time: Default}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WireRequest is the payload of the perform command.
type WireRequest struct {
	Pattern         int `yaml:"pattern"         json:"pattern"         cbor:"pattern"`
	PerformanceTime int `yaml:"performanceTime" json:"performanceTime" cbor:"performanceTime"`
}

// Wire returns the request's wire payload.
func (r Request) Wire() WireRequest {
	return WireRequest{Pattern: int(r.Pattern), PerformanceTime: int(r.Time)}
}

// Request decodes a wire payload.
func (w WireRequest) Request() Request {
	return Request{
		Pattern: PatternFromWire(w.Pattern),
		Time:    PerformanceTimeFromWire(w.PerformanceTime),
	}
}

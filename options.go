package casteljau

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := casteljau.NewSession(casteljau.WithSteps(200))
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	steps int
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		steps: DefaultSteps,
	}
}

// WithSteps sets the number of parameter steps used when the session
// evaluates its curve. Values below 1 keep DefaultSteps.
func WithSteps(steps int) SessionOption {
	return func(o *sessionOptions) {
		if steps >= 1 {
			o.steps = steps
		}
	}
}

package victoria

type Option func(writer *writer)

// WithoutPriority disables priority histogram. Useful for hot bags since histogram update costs more than counters.
func WithoutPriority() Option {
	return func(writer *writer) {
		writer.noprior = true
	}
}

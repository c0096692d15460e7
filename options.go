package intcode

// Option configures a Runtime as it's created by Program.NewRuntime.
type Option interface{ apply(rt *Runtime) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

// WithLogf installs a trace logging function: every executed instruction,
// suspension, and halt is logged through it.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMemLimit limits the highest address that a runtime may touch; going
// past it fails the runtime with a mem.LimitError.
func WithMemLimit(limit uint) Option { return memLimitOption(limit) }

// WithPageSize sets the memory page size, which must be set before any memory
// is written to have effect.
func WithPageSize(size uint) Option { return pageSizeOption(size) }

type options []Option

func (opts options) apply(rt *Runtime) {
	for _, opt := range opts {
		opt.apply(rt)
	}
}

type withLogfn func(mess string, args ...interface{})
type memLimitOption uint
type pageSizeOption uint

func (logfn withLogfn) apply(rt *Runtime)     { rt.logfn = logfn }
func (lim memLimitOption) apply(rt *Runtime)  { rt.mem.Limit = uint(lim) }
func (size pageSizeOption) apply(rt *Runtime) { rt.mem.PageSize = uint(size) }

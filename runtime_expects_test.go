package intcode

// @generated from runtime_test.go

//go:generate go run scripts/gen_rt_expects.go -- runtime_test.go:runtime_expects_test.go

func withRTOptions(opts ...Option) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withOptions(opts...)
	}
}

func withRTMemLimit(limit uint) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withMemLimit(limit)
	}
}

func withRTPageSize(size uint) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withPageSize(size)
	}
}

func withRTMemAt(addr Word, values ...Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withMemAt(addr, values...)
	}
}

func withRTBase(base Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withBase(base)
	}
}

func withRTInputs(values ...Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.withInputs(values...)
	}
}

func expectRTError(err error) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectError(err)
	}
}

func expectRTOutput(values ...Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectOutput(values...)
	}
}

func expectRTMemAt(addr Word, values ...Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectMemAt(addr, values...)
	}
}

func expectRTPC(pc Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectPC(pc)
	}
}

func expectRTBase(base Word) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectBase(base)
	}
}

func expectRTState(kind StateKind) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectState(kind)
	}
}

func expectRTDump(lines ...string) func(rtTestCase) rtTestCase {
	return func(rtt rtTestCase) rtTestCase {
		return rtt.expectDump(lines...)
	}
}

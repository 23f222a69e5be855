package assert

import "github.com/oomph-ac/subcmd/oerror"

// IsTrue panics with an oerror if ok is false. It is meant for startup code, where a broken
// invariant should abort the plugin rather than surface later.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// NoError panics if err is non-nil.
func NoError(err error) {
	if err != nil {
		panic(oerror.New("%v", err))
	}
}

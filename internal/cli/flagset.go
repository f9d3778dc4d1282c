package cli

import "github.com/spf13/pflag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and all grnascan
// flags registered into opt.
func NewFlagSet(name string, opt *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	Register(fs, opt)
	return fs
}

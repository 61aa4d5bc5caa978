package main

import (
	"fmt"

	"github.com/fwojciec/bbref"
)

// Run executes the clear-cache command.
func (c *ClearCacheCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.Clear(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bbref.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Removed %d cached tables\n", n)
	return nil
}

package cmd

import (
	"sync"

	"github.com/spf13/cobra"
)

var (
	regMu     sync.Mutex
	regCmds   []*cobra.Command
	regLocked bool
)

// Register adds a command. Call from init() in custom packages. Panics if the
// registry is locked.
func Register(c *cobra.Command) {
	regMu.Lock()
	defer regMu.Unlock()
	if regLocked {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	regCmds = append(regCmds, c)
}

// Apply adds all registered commands to root. Locks the cmd registry
// (immutable after).
func Apply() {
	regMu.Lock()
	defer regMu.Unlock()
	for _, c := range regCmds {
		rootCmd.AddCommand(c)
	}
	regLocked = true
}

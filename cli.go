//go:build cli
// +build cli

package main

import (
	_ "mergington.GO/custom"

	"mergington.GO/cmd"
	"mergington.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}

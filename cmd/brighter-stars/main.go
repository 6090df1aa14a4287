// Command brighter-stars loads a sky catalog with the brighter_stars object
// type and lists, inspects or plots its objects.
package main

import (
	"fmt"
	"os"

	// Registers the brighter_stars object type.
	_ "github.com/litescript/brighter-stars/internal/brighter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

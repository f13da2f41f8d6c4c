// bterm manages the appearance settings of better-terminal
package main

import (
	"os"

	"github.com/iiroan/better-terminal/cmd/bterm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

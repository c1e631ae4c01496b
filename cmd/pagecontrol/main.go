// Command pagecontrol renders, inspects and previews page indicator styles.
package main

import (
	"os"

	"github.com/go-drift/pagecontrol/cmd/pagecontrol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

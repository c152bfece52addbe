// nohrs is a terminal front end for the nohrs file manager settings
package main

import (
	"os"

	"github.com/linruohan/nohrs/cmd/nohrs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command htree renders H-tree fractals to PNG images.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

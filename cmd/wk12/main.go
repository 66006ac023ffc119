// Package main provides the WK12 CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("WK12 %s\n", version)
		return
	}

	fmt.Println("WK12 - Autodiff and Gradient-Descent Training in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Demos (go run ./examples/<name>):")
	fmt.Println("  quartic    Derivative check and descent/ascent on a scalar quartic")
	fmt.Println("  surface    Descent and ascent on two-variable surfaces")
	fmt.Println("  housing    Regression training on the California housing dataset")
}

// cmd/primedesign/main.go
package main

import (
	"os"

	"primedesign/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

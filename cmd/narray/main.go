// Package main provides the narray command line demo tool.
package main

import "github.com/kmdreko/narray/internal/cmd"

func main() {
	cmd.Execute()
}

// Package main implements the catalogctl client CLI.
package main

import "github.com/omlco/catalog/internal/cli"

func main() {
	cli.Execute()
}

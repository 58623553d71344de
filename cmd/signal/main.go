// Command signal looks up Linux signals by number, name or exit status.
package main

import "lookup/internal/cli"

func main() {
	cli.Execute(cli.NewSignalCommand())
}

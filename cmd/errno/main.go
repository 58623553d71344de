// Command errno looks up Linux error numbers.
package main

import "lookup/internal/cli"

func main() {
	cli.Execute(cli.NewErrnoCommand())
}

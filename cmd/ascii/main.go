// Command ascii looks up ASCII characters by character, number or caret
// notation.
package main

import "lookup/internal/cli"

func main() {
	cli.Execute(cli.NewASCIICommand())
}

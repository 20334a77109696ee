// nominal CLI - convert and inspect tagged base32 UUIDs
package main

import "github.com/getmockd/nominal/pkg/cli"

func main() {
	cli.Execute()
}

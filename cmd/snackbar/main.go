package main

import "github.com/xcbolt/snackbar/internal/cli"

func main() {
	cli.Execute()
}

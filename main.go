package main

import (
	"novalith.com/note_transfer/cli"
)

func main() {
	cli.Execute()
}

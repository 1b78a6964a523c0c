package main

import (
	"github.com/vanirdb/vanir/cmd/vanir/cmd"
)

func main() {
	cmd.Execute()
}

package main

import "github.com/gmartins/ufmg-calendar/internal/cli"

func main() {
	cli.Execute()
}

package main

import "wealthpath-finance/internal/cli"

func main() {
	cli.Execute()
}

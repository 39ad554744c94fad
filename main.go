package main

import "github.com/cmmoran/flowts/cmd"

func main() {
	cmd.Execute()
}

package main

import "drone-route-service/internal/cli"

func main() {
	cli.Execute()
}

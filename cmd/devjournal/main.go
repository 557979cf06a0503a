package main

import "github.com/devjourney/devjourney-backend/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/baditaflorin/go_palindrome/internal/cli"

func main() {
	cli.Execute()
}

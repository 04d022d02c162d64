// Package main provides the passgen command line generator.
//
// Usage:
//
//	passgen generate --length 20 --no-symbols
//	passgen strength 'Ab3!Cd5@Ef6%'
//
// See --help for all available options.
package main

func main() {
	Execute()
}

// Command hashpw prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpw 'my admin password'
package main

import (
	"fmt"
	"os"

	"laserwood/internal/infrastructure/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

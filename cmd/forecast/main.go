// cmd/forecast/main.go
// CLI: jalankan pipeline forecast lokal, cetak default, seed MySQL demo
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

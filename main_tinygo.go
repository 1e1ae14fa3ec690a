//go:build tinygo && baremetal

package main

import (
	"msgpanel/app"
	"msgpanel/hal"
	"msgpanel/internal/config"
)

func main() {
	sys, err := app.New(hal.New(), config.Default(), nil)
	if err != nil {
		// The boot screen already shows the failure.
		select {}
	}
	sys.Run()
}

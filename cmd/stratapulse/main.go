// Command stratapulse runs the admin dashboard API server.
//
// All lifecycle wiring lives in internal/app/bootstrap; this entry
// point only hands the hooks to WAFFLE.
package main

import (
	"context"
	"log"

	"github.com/dalemusser/stratapulse/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}

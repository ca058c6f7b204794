// Command soundboard runs the Discord soundboard bot and its admin panel.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/soundboard/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("soundboard: %v", err)
	}
}

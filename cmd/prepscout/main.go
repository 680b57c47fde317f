package main

import (
	"log"

	"github.com/MrSnakeDoc/prepscout/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ prepscout failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ prepscout stopped with error: %v", err)
	}
}

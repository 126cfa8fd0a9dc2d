package main

import (
	"fmt"
	"os"

	"github.com/ytget/vocab-trainer/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// main is the entry point used by "fyne package"; the full command line
// lives in cmd/vocab-trainer.
func main() {
	fmt.Printf("Vocabulary Trainer v%s starting...\n", version)

	if err := app.RunGUI(app.Options{Version: version}); err != nil {
		fmt.Fprintf(os.Stderr, "vocab-trainer: %v\n", err)
		os.Exit(1)
	}
}

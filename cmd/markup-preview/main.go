package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-markup/pkg/preview"
)

func main() {
	scenarioPath := flag.String("scenario", "scenario.yaml", "scenario file to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for flag values and re-render")
	flag.Parse()

	sc, err := preview.LoadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	if *interactive {
		session, err := preview.NewSession(sc)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if err := session.Run(context.Background()); err != nil {
			log.Fatalf("Preview session failed: %v", err)
		}
		return
	}

	rendered, err := sc.Render(nil)
	if err != nil {
		log.Fatalf("Failed to render scenario: %v", err)
	}

	var builder strings.Builder
	for _, slot := range sc.SlotNames() {
		builder.WriteString(slot)
		builder.WriteString(": ")
		builder.WriteString(string(rendered[slot]))
		builder.WriteByte('\n')
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(builder.String()), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered slots written to %s\n", *output)
	} else {
		fmt.Print(builder.String())
	}
}

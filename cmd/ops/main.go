package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dreyyiizz/ComponentsAct-Ardiente/internal/task"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "export":
		if err := cmdExport(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "export failed:", err)
			os.Exit(1)
		}
	case "inspect":
		if err := cmdInspect(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "inspect failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

// cmdExport writes the example seed set in the legacy wire format,
// for exchange with the old API.
func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "", "output path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := task.NewSeededStore(time.Now())
	tasks := store.List()

	legacy := make([]task.LegacyTask, len(tasks))
	for i, t := range tasks {
		legacy[i] = task.ToLegacy(t)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(legacy)
}

// cmdInspect reads a legacy-format JSON file, normalizes it through
// the adapter and prints the internal representation.
func cmdInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	in := fs.String("in", "", "path to a legacy-format JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	b, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	var legacy []task.LegacyTask
	if err := json.Unmarshal(b, &legacy); err != nil {
		return err
	}

	now := time.Now()
	for _, raw := range legacy {
		t := task.FromLegacy(raw, now)
		line, err := json.Marshal(t)
		if err != nil {
			return err
		}
		fmt.Println(string(line))
	}

	fmt.Fprintf(os.Stderr, "normalized %d task(s)\n", len(legacy))
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: ops <command> [flags]

commands:
  export   write the example seed set in the legacy JSON format
  inspect  normalize a legacy JSON file and print the internal shape`)
}

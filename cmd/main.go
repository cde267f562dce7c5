// cmd/main.go is the application entry point.
// It builds one session, wires the console view, and runs the command loop.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tskaric/event-registration/internal/form"
	"github.com/tskaric/event-registration/internal/session"
	"github.com/tskaric/event-registration/internal/ui"
)

func main() {
	// ── 1. One catalog/ledger pair for this session ──────────────────────
	sess := session.New()
	console := ui.New(sess, os.Stdout)

	// ── 2. Re-render on every committed change ───────────────────────────
	release := console.Watch()
	defer release()

	fmt.Println("event registration demo — type 'help' for commands")
	console.RenderEvents()

	// ── 3. Command loop ──────────────────────────────────────────────────
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "list":
			console.RenderEvents()
		case "show":
			console.RenderEvent(parseID(arg))
		case "regs":
			console.RenderRegistrations(parseID(arg))
		case "register":
			console.Register(form.Registration{
				EventID: parseID(arg),
				Name:    prompt(in, "name: "),
				Email:   prompt(in, "email: "),
			})
		case "add":
			console.AddEvent(promptEvent(in))
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q — type 'help'\n", cmd)
		}
	}
	if err := in.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}

// parseID turns a command argument into an event id; 0 never matches an
// event, so bad input falls through to the invalid-selection path.
func parseID(s string) int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return id
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptEvent(in *bufio.Scanner) form.Event {
	f := form.Event{
		Name:     prompt(in, "event name: "),
		Location: prompt(in, "location: "),
	}
	if d, err := time.Parse("2006-01-02", prompt(in, "date (YYYY-MM-DD): ")); err == nil {
		f.Date = d
	}
	f.TotalSeats = parseID(prompt(in, "total seats: "))
	return f
}

func printHelp() {
	fmt.Println(`commands:
  list           show all events
  show <id>      show one event
  regs <id>      show registrations for an event
  register <id>  register for an event (prompts for name and email)
  add            create a new event (prompts for fields)
  quit           exit`)
}

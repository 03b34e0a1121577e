package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	ListUploads(ctx context.Context) error
	ShowUpload(ctx context.Context, id string) error
	AddUpload(ctx context.Context) error
	EditUpload(ctx context.Context, id string) error
	DeleteUpload(ctx context.Context, id string) error
	ListLocations(ctx context.Context) error
	SaveLocation(ctx context.Context) error
	RemoveLocation(ctx context.Context, name string) error
	Weather(ctx context.Context, q string) error
	HourlyWeather(ctx context.Context, date string) error
	History(ctx context.Context, date string) error
	SetLocation(ctx context.Context) error
	UseDeviceLocation(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

const helpText = `Available commands:
  list                 show recorded sessions, newest first
  show <id>            show one session
  add                  record a new session
  edit <id>            change a session
  delete <id>          delete a session and its photos
  locations            list saved painting spots
  saveloc              bookmark a painting spot
  removeloc <name>     remove a bookmarked spot
  weather [place]      forecast for a place or the working location
  hours <date>         hour-by-hour forecast for one day (YYYY-MM-DD)
  history <date>       past conditions (YYYY-MM-DD)
  setloc               pin a custom working location
  here                 use the device location again
  clear                wipe all stored data
  exit                 leave`

// runREPL reads a line, takes the first token as the command and dispatches
// to a. Handlers report their own failures to the user; errors returned here
// are ignored so one failed command never ends the loop. The loop exits on
// scanner EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("easel> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "list", "l":
			_ = a.ListUploads(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.ShowUpload(ctx, args[0])

		case "add":
			_ = a.AddUpload(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditUpload(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeleteUpload(ctx, args[0])

		case "locations":
			_ = a.ListLocations(ctx)

		case "saveloc":
			_ = a.SaveLocation(ctx)

		case "removeloc":
			if len(args) == 0 {
				printlnFn("Usage: removeloc <name>")
				continue
			}
			_ = a.RemoveLocation(ctx, strings.Join(args, " "))

		case "weather":
			_ = a.Weather(ctx, strings.Join(args, " "))

		case "hours":
			if len(args) == 0 {
				printlnFn("Usage: hours <YYYY-MM-DD>")
				continue
			}
			_ = a.HourlyWeather(ctx, args[0])

		case "history":
			if len(args) == 0 {
				printlnFn("Usage: history <YYYY-MM-DD>")
				continue
			}
			_ = a.History(ctx, args[0])

		case "setloc":
			_ = a.SetLocation(ctx)

		case "here":
			_ = a.UseDeviceLocation(ctx)

		case "clear":
			_ = a.ClearAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}

package console

import (
	"context"
	"fmt"
	"strings"
)

// Run starts the read–eval–print loop: load the list once, then dispatch
// commands until EOF or an explicit exit. Command handlers surface their own
// errors through the status message; the loop itself only does I/O.
func (c *Console) Run(ctx context.Context) {
	c.InitialLoad(ctx)
	c.Render()

	for {
		fmt.Fprint(c.out, "leads> ")

		line, err := c.reader.ReadString('\n')
		if err != nil {
			return
		}

		switch cmd := strings.TrimSpace(line); cmd {
		case "":
			continue

		case "help":
			fmt.Fprintln(c.out, "Available commands: (l)ist, (a)dd, (r)efresh, exit")

		case "l", "list":
			c.Render()

		case "r", "refresh":
			c.Refresh(ctx)
			c.Render()

		case "a", "add":
			if err := c.Add(ctx); err != nil {
				return
			}
			c.Render()

		case "exit", "quit":
			fmt.Fprintln(c.out, "Bye!")
			return

		default:
			fmt.Fprintln(c.out, "Unknown command:", cmd)
		}
	}
}

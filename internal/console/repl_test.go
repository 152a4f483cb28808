package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadtrack/internal/entity"
)

func TestRunListAndExit(t *testing.T) {
	api := &stubAPI{leads: []entity.Lead{{Name: "Jane", Email: "jane@x.com", Status: entity.StatusNew}}}
	c, out := newTestConsole(api, "list\nexit\n")

	c.Run(context.Background())

	assert.Contains(t, out.String(), "jane@x.com")
	assert.Contains(t, out.String(), "Bye!")
	assert.Equal(t, 1, api.listCalls) // initial load only; list renders local state
}

func TestRunRefresh(t *testing.T) {
	api := &stubAPI{}
	c, out := newTestConsole(api, "refresh\nquit\n")

	c.Run(context.Background())

	assert.Equal(t, 2, api.listCalls)
	assert.Contains(t, out.String(), "Refreshing...")
}

func TestRunAdd(t *testing.T) {
	created := &entity.Lead{ID: "1", Name: "Jane", Email: "jane@x.com", Status: entity.StatusEngaged}
	api := &stubAPI{created: created}
	c, out := newTestConsole(api, "add\nJane\njane@x.com\nEngaged\nexit\n")

	c.Run(context.Background())

	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, "Jane", api.lastInput.Name)
	assert.Equal(t, "jane@x.com", api.lastInput.Email)
	assert.Equal(t, entity.StatusEngaged, api.lastInput.Status)
	assert.Contains(t, out.String(), "Lead added successfully!")
}

func TestRunAddDefaultStatus(t *testing.T) {
	created := &entity.Lead{ID: "1", Name: "Jane", Email: "jane@x.com", Status: entity.StatusNew}
	api := &stubAPI{created: created}
	c, _ := newTestConsole(api, "add\nJane\njane@x.com\n\nexit\n")

	c.Run(context.Background())

	assert.Equal(t, entity.StatusNew, api.lastInput.Status)
}

func TestRunUnknownCommand(t *testing.T) {
	c, out := newTestConsole(&stubAPI{}, "frobnicate\nexit\n")

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestRunExitsOnEOF(t *testing.T) {
	c, _ := newTestConsole(&stubAPI{}, "")

	// No input at all: the loop must return instead of spinning.
	c.Run(context.Background())
}

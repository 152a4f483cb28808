package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/xavierca1/leadtrack/internal/console/client"
	"github.com/xavierca1/leadtrack/internal/entity"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

// messageClearDelay is how long a transient status message stays on screen.
const messageClearDelay = 2 * time.Second

// LeadAPI is the slice of the API client the console needs; tests provide a
// stub.
type LeadAPI interface {
	ListLeads(ctx context.Context) ([]entity.Lead, error)
	CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error)
}

// Console holds the transient client-side state of the lead console: the
// currently known lead list, the in-progress form, the two in-flight flags
// and a short-lived status message. All of it is lost on exit by design of
// the wire contract — the server owns the canonical records.
type Console struct {
	api    LeadAPI
	out    io.Writer
	reader *bufio.Reader

	mu         sync.Mutex
	leads      []entity.Lead
	form       usecase.CreateLeadInput
	loading    bool
	refreshing bool
	message    string
	msgGen     int

	clearDelay time.Duration
}

func New(api LeadAPI, in io.Reader, out io.Writer) *Console {
	return &Console{
		api:        api,
		out:        out,
		reader:     bufio.NewReader(in),
		form:       defaultForm(),
		clearDelay: messageClearDelay,
	}
}

func defaultForm() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{Status: entity.StatusNew}
}

// InitialLoad fetches the list once on startup. On failure the list stays
// empty and only the message reflects the problem.
func (c *Console) InitialLoad(ctx context.Context) {
	leads, err := c.api.ListLeads(ctx)
	if err != nil {
		c.setMessage("Error loading leads")
		return
	}

	c.mu.Lock()
	c.leads = leads
	c.mu.Unlock()
}

// Refresh re-fetches the list. A refresh already in flight makes this a
// no-op; success shows a message that clears itself after the fixed delay.
func (c *Console) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return
	}
	c.refreshing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
	}()

	fmt.Fprintln(c.out, "Refreshing...")

	leads, err := c.api.ListLeads(ctx)
	if err != nil {
		c.setMessage("Error fetching leads")
		return
	}

	c.mu.Lock()
	c.leads = leads
	c.mu.Unlock()

	c.setTransientMessage("Leads refreshed!")
}

// Submit sends the current form. On success the created lead is prepended —
// a brand-new record is always newest, so local order stays consistent with
// the server's — and the form resets to defaults.
func (c *Console) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.message = ""
	form := c.form
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	lead, err := c.api.CreateLead(ctx, form)
	if err != nil {
		msg := "Error adding lead"
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.setMessage(msg)
		return
	}

	c.mu.Lock()
	c.leads = append([]entity.Lead{*lead}, c.leads...)
	c.form = defaultForm()
	c.mu.Unlock()

	c.setMessage("Lead added successfully!")
}

func (c *Console) setMessage(msg string) {
	c.mu.Lock()
	c.message = msg
	c.msgGen++
	c.mu.Unlock()
}

func (c *Console) setTransientMessage(msg string) {
	c.mu.Lock()
	c.message = msg
	c.msgGen++
	gen := c.msgGen
	c.mu.Unlock()

	time.AfterFunc(c.clearDelay, func() {
		c.mu.Lock()
		// A newer message wins; only clear our own.
		if c.msgGen == gen {
			c.message = ""
		}
		c.mu.Unlock()
	})
}

// Render prints the current state: message, lead count and the list with
// colored status badges.
func (c *Console) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.message != "" {
		fmt.Fprintf(c.out, "* %s\n", c.message)
	}

	fmt.Fprintf(c.out, "All Leads (%d)\n", len(c.leads))

	if len(c.leads) == 0 {
		fmt.Fprintln(c.out, "No leads found. Add your first lead with `add`.")
		return
	}

	for _, lead := range c.leads {
		fmt.Fprintf(c.out, "  %-20s %-30s %s%s%s  %s\n",
			lead.Name,
			lead.Email,
			statusColor(lead.Status),
			lead.Status,
			colorReset,
			lead.CreatedAt.Local().Format("2006-01-02"),
		)
	}
}

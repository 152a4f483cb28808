package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xavierca1/leadtrack/internal/entity"
)

// promptLine prints a prompt and reads one trimmed line. A partial line at
// EOF is still returned.
func (c *Console) promptLine(prompt string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s\n> ", prompt); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Add walks the user through the new-lead form and submits it. Field values
// land in the form state first, so a failed submit keeps them around.
func (c *Console) Add(ctx context.Context) error {
	name, err := c.promptLine("Name *")
	if err != nil {
		return err
	}

	email, err := c.promptLine("Email *")
	if err != nil {
		return err
	}

	status, err := c.promptLine(fmt.Sprintf("Status [%s] (%s)", entity.StatusNew, strings.Join(entity.Statuses, ", ")))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.form.Name = name
	c.form.Email = email
	if status != "" {
		c.form.Status = status
	}
	c.mu.Unlock()

	c.Submit(ctx)
	return nil
}

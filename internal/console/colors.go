package console

import "github.com/xavierca1/leadtrack/internal/entity"

const (
	colorReset   = "\033[0m"
	colorBlue    = "\033[34m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorRed     = "\033[31m"
	colorGray    = "\033[90m"
)

// statusColor maps a lead status to its badge color. Total over its input:
// anything unrecognized gets the neutral gray, never an error.
func statusColor(status string) string {
	switch status {
	case entity.StatusNew:
		return colorBlue
	case entity.StatusEngaged:
		return colorYellow
	case entity.StatusProposalSent:
		return colorMagenta
	case entity.StatusClosedWon:
		return colorGreen
	case entity.StatusClosedLost:
		return colorRed
	default:
		return colorGray
	}
}

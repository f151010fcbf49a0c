// Package render contains the terminal presentation of the feed.
package render

import (
	"fmt"
	"io"
	"time"

	"echowall/internal/models"
)

// Text renders the projected feed to a writer. Relative-time labels are
// recomputed on every render.
type Text struct {
	Out io.Writer
	Now func() time.Time
}

// NewText creates a renderer writing to out.
func NewText(out io.Writer) *Text {
	return &Text{Out: out, Now: time.Now}
}

// Render writes the view in display order.
func (t *Text) Render(view []models.Post) {
	now := t.Now()
	for _, p := range view {
		fmt.Fprintf(t.Out, "%s · %s\n", p.UserName, RelativeTime(p.Time, now))
		fmt.Fprintf(t.Out, "  %s\n", p.Text)
		if p.ImageURL != "" {
			fmt.Fprintf(t.Out, "  image: %s\n", p.ImageURL)
		}
		marker := " "
		if p.IsLiked {
			marker = "*"
		}
		fmt.Fprintf(t.Out, "  [%s] %d likes\n\n", marker, p.Likes)
	}
}

// RelativeTime formats t against now using the feed's coarse buckets.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

package render

import (
	"bytes"
	"testing"
	"time"

	"echowall/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"older than a week", now.Add(-30 * 24 * time.Hour), "May 2, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.t, now))
		})
	}
}

func TestTextRender(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	r := NewText(&buf)
	r.Now = func() time.Time { return now }

	r.Render([]models.Post{
		{
			UserName: "alice",
			Text:     "hello feed",
			ImageURL: "https://img.example/a.png",
			Time:     now.Add(-5 * time.Minute),
			Likes:    3,
			IsLiked:  true,
		},
		{
			UserName: "bob",
			Text:     "plain post",
			Time:     now.Add(-2 * time.Hour),
		},
	})

	out := buf.String()
	assert.Contains(t, out, "alice · 5m ago")
	assert.Contains(t, out, "  hello feed")
	assert.Contains(t, out, "  image: https://img.example/a.png")
	assert.Contains(t, out, "[*] 3 likes")
	assert.Contains(t, out, "bob · 2h ago")
	assert.Contains(t, out, "[ ] 0 likes")
	assert.NotContains(t, out, "image: \n")
}

func TestTextRenderEmptyView(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf).Render(nil)
	assert.Empty(t, buf.String())
}

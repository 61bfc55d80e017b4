package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/docker/toolview/pkg/tui/components/notification"
	"github.com/docker/toolview/pkg/tui/components/thumbnail"
	"github.com/docker/toolview/pkg/userconfig"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// writeImage decodes a data URI into a new file under dir.
func writeImage(dir, src string) (string, error) {
	mediaType, payload, err := thumbnail.ParseDataURI(src)
	if err != nil {
		return "", err
	}

	ext, ok := extensions[mediaType]
	if !ok {
		ext = ".bin"
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}

	path := filepath.Join(dir, "image-"+uuid.NewString()+ext)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return path, nil
}

// imageAction runs the configured click action on src and returns the
// notification that reports how it went.
func (m *Model) imageAction(ctx context.Context, src string) tea.Msg {
	switch m.clickAction {
	case userconfig.ImageClickOpen:
		path, err := writeImage(m.imageDir, src)
		if err != nil {
			return notification.ShowMsg{Text: "Failed to save image: " + err.Error(), Level: notification.LevelError}
		}
		if err := m.open(ctx, path); err != nil {
			return notification.ShowMsg{Text: "Failed to open image: " + err.Error(), Level: notification.LevelError}
		}
		return notification.ShowMsg{Text: "Opened " + filepath.Base(path)}

	default:
		if err := m.copyToClipboard(src); err != nil {
			return notification.ShowMsg{Text: "Failed to copy image: " + err.Error(), Level: notification.LevelError}
		}
		return notification.ShowMsg{Text: "Copied image to clipboard"}
	}
}

// Package browser opens files and URLs with the platform's default handler.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// start runs the opener without waiting for it to exit.
var start = func(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}

// Open hands target, a URL or a local file path, to the default handler.
func Open(ctx context.Context, target string) error {
	name, args, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}

	if err := start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

func command(goos, target string) (string, []string, error) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

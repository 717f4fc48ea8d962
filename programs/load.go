package programs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/aoc2019/nets"
)

// Stdin is read when the location is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load returns the program text found at location.
// location is "-" for stdin, an http(s) URL, a name from the configured programs, or a file path.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	session machineconfigs.SessionCookie,
	programs machineconfigs.Programs,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret string, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("load program %s: %w", location, err)
			}
		}()

		if configured, ok := programs[location]; ok {
			logger.DebugContext(ctx, "configured program", "name", location, "location", configured)
			location = configured
		}

		switch {

		case location == "-":
			content, err := io.ReadAll(stdin)
			if err != nil {
				return "", err
			}
			return string(content), nil

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			return fetch(ctx, client, session, location)

		}

		content, err := os.ReadFile(location)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, session machineconfigs.SessionCookie, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if session != "" {
		req.AddCookie(&http.Cookie{
			Name:  "session",
			Value: string(session),
		})
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %s", resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

package transfer

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// DownloadTimeout bounds a single installer fetch. Installers can be
	// large, so the timeout is generous.
	DownloadTimeout = 5 * time.Minute

	// UserAgent identifies the app to download servers
	UserAgent = "appdock/1.0"
)

// Client fetches installer files over HTTP. It satisfies the dispatch
// engine's TransferProvider contract.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new transfer client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DownloadTimeout,
		},
	}
}

// Fetch downloads url into destPath, creating or overwriting the file. A
// failed transfer removes the partial file so nothing half-written is left
// at the destination.
func (c *Client) Fetch(url, destPath string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	log.Printf("Downloaded %s (%d bytes)", filepath.Base(destPath), written)
	return nil
}

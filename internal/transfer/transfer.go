package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Client is an SFTP session against the Navigate file-exchange endpoint.
type Client struct {
	conn *ssh.Client
	sftp *sftp.Client
}

// Connect dials host (":22" is assumed when no port is given) as username,
// authenticating with the private key at keyFile, and opens an SFTP session.
// The endpoint rotates host keys on re-provisioning, so unknown host keys are
// accepted rather than pinned.
func Connect(host, username, keyFile string) (*Client, error) {
	keyData, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("transfer: read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("transfer: parse private key: %w", err)
	}

	cfg := &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	addr := host
	if !strings.Contains(host, ":") {
		addr = host + ":22"
	}
	conn, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("transfer: connect %s: %w", addr, err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("transfer: open sftp session: %w", err)
	}

	return &Client{conn: conn, sftp: client}, nil
}

// List returns the entry names in the remote directory.
func (c *Client) List(dir string) ([]string, error) {
	entries, err := c.sftp.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("transfer: list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Download copies remote to local, creating local's directory if needed.
func (c *Client) Download(remote, local string) error {
	src, err := c.sftp.Open(remote)
	if err != nil {
		return fmt.Errorf("transfer: open remote %s: %w", remote, err)
	}
	defer src.Close()

	if dir := filepath.Dir(local); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("transfer: create local dir: %w", err)
		}
	}
	dst, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("transfer: create local %s: %w", local, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("transfer: download %s: %w", remote, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("transfer: close local %s: %w", local, err)
	}
	return nil
}

// Upload copies local to remote.
func (c *Client) Upload(local, remote string) error {
	src, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("transfer: open local %s: %w", local, err)
	}
	defer src.Close()

	dst, err := c.sftp.Create(remote)
	if err != nil {
		return fmt.Errorf("transfer: create remote %s: %w", remote, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("transfer: upload %s: %w", local, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("transfer: close remote %s: %w", remote, err)
	}
	return nil
}

// Close tears down the SFTP session and the SSH connection.
func (c *Client) Close() error {
	var firstErr error
	if c.sftp != nil {
		firstErr = c.sftp.Close()
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

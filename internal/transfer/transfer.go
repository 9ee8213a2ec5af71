package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"xatsw/pkg/logging"
)

// TargetFileName is the name of the live save file in a target directory.
const TargetFileName = "chat.sol"

const filePermission = 0644

// ErrSameFile is returned when source and destination resolve to one file.
var ErrSameFile = errors.New("source and destination are the same file")

// Direction selects which side of a Plan is read.
type Direction int

const (
	// Extract copies the live save into storage.
	Extract Direction = iota
	// Load copies a stored profile over the live save.
	Load
)

// String returns the command name for the direction.
func (d Direction) String() string {
	switch d {
	case Extract:
		return "extract"
	case Load:
		return "load"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Plan holds the two ends of a profile transfer.
type Plan struct {
	// InStorage is the profile file inside the storage directory.
	InStorage string
	// InTarget is the live save file inside the target directory.
	InTarget string
}

// NewPlan joins the storage and target directories with their file names.
func NewPlan(storageDir, name, targetDir string) Plan {
	return Plan{
		InStorage: filepath.Join(storageDir, name),
		InTarget:  filepath.Join(targetDir, TargetFileName),
	}
}

// Endpoints returns the source and destination for the direction.
func (p Plan) Endpoints(d Direction) (src, dst string) {
	if d == Load {
		return p.InStorage, p.InTarget
	}
	return p.InTarget, p.InStorage
}

// Result describes a finished transfer.
type Result struct {
	Source      string
	Destination string
	Bytes       int64
}

// Run copies the plan in direction d.
func Run(ctx context.Context, p Plan, d Direction) (Result, error) {
	src, dst := p.Endpoints(d)
	n, err := Copy(ctx, src, dst)
	return Result{Source: src, Destination: dst, Bytes: n}, err
}

// Copy streams src into dst, creating or truncating dst. It returns the
// number of bytes written. Cancelling ctx stops the copy between reads and
// leaves dst partially written.
func Copy(ctx context.Context, src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	if err := checkDistinct(in, dst); err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermission)
	if err != nil {
		return 0, fmt.Errorf("failed to open destination: %w", err)
	}

	n, err := io.Copy(out, &contextReader{ctx: ctx, r: in})
	if err != nil {
		out.Close()
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to close destination: %w", err)
	}

	logging.Debug("Transfer", "Copied %d bytes from %s to %s", n, src, dst)
	return n, nil
}

// checkDistinct refuses a destination that is the already opened source,
// since truncating it would erase the data before it is read.
func checkDistinct(in *os.File, dst string) error {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return nil
	}
	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s", ErrSameFile, dst)
	}
	return nil
}

// contextReader fails reads once its context is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

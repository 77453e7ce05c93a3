package codegen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"codeforge/internal/catalog"
	"codeforge/internal/remote"
)

// Result strings returned across the persister and pipeline boundaries.
// Callers distinguish success from failure by the "Error" prefix, not by an
// error value.
const (
	MsgCodesSaved     = "Codes saved successfully"
	MsgCodesGenerated = "codes generated and saved successfully"
)

// IsErrorResult reports whether a boundary result string denotes a failure.
func IsErrorResult(result string) bool {
	return strings.HasPrefix(result, "Error")
}

// Persister writes one file's content to its resolved destination, registers
// a catalog row for it, and mirrors it to remote storage when its storage
// class requires that.
type Persister struct {
	Catalog  catalog.Store
	Uploader remote.Uploader
	Storage  catalog.StorageConfig

	// OutputRootDir is the configured output root; empty means WorkDir.
	OutputRootDir string
	WorkDir       string
	AgentID       string
}

// Save persists one file and converts any failure into a textual result.
// Nothing escapes this boundary as an error.
func (p *Persister) Save(ctx context.Context, fileName, content string) string {
	if err := p.save(ctx, fileName, content); err != nil {
		return fmt.Sprintf("Error saving codes to file: %v", err)
	}
	log.Printf("code %s saved successfully", fileName)
	return MsgCodesSaved
}

// save runs the write/register/upload unit against a fresh catalog session.
// The local write and the catalog commit are deliberately not transactional
// with each other: a failed commit leaves the written file in place.
func (p *Persister) save(ctx context.Context, fileName, content string) error {
	sess, err := p.Catalog.Begin(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	dst := ResolveOutputPath(fileName, p.OutputRootDir, p.WorkDir)
	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return err
	}

	f, err := os.Open(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := catalog.MakeWrittenFileResource(p.Storage, fileName, p.AgentID, f)
	if err != nil {
		return err
	}
	if res == nil {
		// Tracking disabled: the file is written, nothing else happens.
		return nil
	}
	if err := sess.AddResource(ctx, res); err != nil {
		return err
	}
	if err := sess.Commit(ctx); err != nil {
		return err
	}

	if res.StorageType == catalog.StorageS3 {
		if p.Uploader == nil {
			return fmt.Errorf("storage type %s but no uploader configured", res.StorageType)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := p.Uploader.Upload(ctx, f, res.Size, res.Path); err != nil {
			return err
		}
	}
	return nil
}

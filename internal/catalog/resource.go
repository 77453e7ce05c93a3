package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// StorageConfig decides how written files are classified and whether they
// are registered at all.
type StorageConfig struct {
	// Type is StorageLocal or StorageS3.
	Type string
	// Disabled turns resource tracking off entirely: files are still
	// written, but no row is created and nothing is mirrored.
	Disabled bool
}

// MakeWrittenFileResource builds the catalog row for a file that was just
// written locally. The open handle must point at the written file; its
// absolute path and size become the row's local location. Returns (nil, nil)
// when tracking is disabled.
func MakeWrittenFileResource(cfg StorageConfig, fileName, agentID string, f *os.File) (*Resource, error) {
	if cfg.Disabled {
		return nil, nil
	}
	if f == nil {
		return nil, fmt.Errorf("catalog: nil file handle for %q", fileName)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("catalog: stat %q: %w", fileName, err)
	}

	storageType := StorageLocal
	path := f.Name()
	if strings.EqualFold(cfg.Type, StorageS3) {
		storageType = StorageS3
		path = RemoteObjectPath(agentID, fileName)
	}
	return &Resource{
		FileName:    fileName,
		AgentID:     agentID,
		Channel:     ChannelOutput,
		StorageType: storageType,
		Path:        path,
		Size:        info.Size(),
		CreatedAt:   time.Now(),
	}, nil
}

// RemoteObjectPath is the object-store key for an agent's output file.
func RemoteObjectPath(agentID, fileName string) string {
	return "resources/" + agentID + "/output/" + fileName
}

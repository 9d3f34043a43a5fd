// Package snapshot writes a tournament to a SnapshotStore as one JSON
// document per subgraph plus a metadata document, and reads it back.
package snapshot

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/tournament"
	"github.com/gravadigital/turnier-api/internal/storage"
)

// Document names
const (
	MetadataDocument = "tournament.json"
	DaysDocument     = "days.json"
	BewerbsDocument  = "bewerbs.json"
	FencersDocument  = "fencers.json"
)

// FormatVersion is the layout version written into the metadata
const FormatVersion = 1

// Documents lists the subgraph documents in write order; the metadata
// document is written after them.
var Documents = []string{DaysDocument, BewerbsDocument, FencersDocument}

// Metadata describes one saved revision
type Metadata struct {
	Name          string            `json:"name"`
	FormatVersion int               `json:"format_version"`
	Revision      uuid.UUID         `json:"revision"`
	SavedAt       time.Time         `json:"saved_at"`
	Checksums     map[string]string `json:"checksums"`
}

// Checksum returns the hex blake2b-256 digest of data
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func encode(snap tournament.Snapshot) (map[string][]byte, error) {
	values := map[string]any{
		DaysDocument:    snap.Days,
		BewerbsDocument: snap.Bewerbs,
		FencersDocument: snap.Fencers,
	}
	docs := make(map[string][]byte, len(values))
	for name, v := range values {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}
		docs[name] = data
	}
	return docs, nil
}

// Save writes every subgraph document, then the metadata. A failed document
// does not stop the others; all failures are returned joined. The metadata
// carries checksums of the documents that were written.
func Save(ctx context.Context, store storage.SnapshotStore, path string, snap tournament.Snapshot) (Metadata, error) {
	meta := Metadata{
		Name:          snap.Name,
		FormatVersion: FormatVersion,
		Revision:      uuid.New(),
		SavedAt:       time.Now().UTC(),
		Checksums:     make(map[string]string, len(Documents)),
	}

	docs, err := encode(snap)
	if err != nil {
		return meta, err
	}

	var errs []error
	for _, name := range Documents {
		if err := store.Write(ctx, path, name, docs[name]); err != nil {
			errs = append(errs, err)
			continue
		}
		meta.Checksums[name] = Checksum(docs[name])
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		errs = append(errs, fmt.Errorf("encoding %s: %w", MetadataDocument, err))
	} else if err := store.Write(ctx, path, MetadataDocument, data); err != nil {
		errs = append(errs, err)
	}
	return meta, errors.Join(errs...)
}

// ReadMetadata reads the metadata document of a snapshot
func ReadMetadata(ctx context.Context, store storage.SnapshotStore, path string) (Metadata, error) {
	var meta Metadata
	data, err := store.Read(ctx, path, MetadataDocument)
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("decoding %s: %w", MetadataDocument, err)
	}
	if meta.FormatVersion > FormatVersion {
		return meta, fmt.Errorf("snapshot %s has format version %d, newest supported is %d", path, meta.FormatVersion, FormatVersion)
	}
	return meta, nil
}

// Read decodes the documents of a snapshot without rebuilding the live graph.
// A document whose checksum differs from the metadata is reported, not rejected.
func Read(ctx context.Context, store storage.SnapshotStore, path string) (tournament.Snapshot, Metadata, common.Diagnostics, error) {
	var snap tournament.Snapshot
	var diags common.Diagnostics

	meta, err := ReadMetadata(ctx, store, path)
	if err != nil {
		return snap, meta, diags, err
	}
	snap.Name = meta.Name

	targets := map[string]any{
		DaysDocument:    &snap.Days,
		BewerbsDocument: &snap.Bewerbs,
		FencersDocument: &snap.Fencers,
	}
	for _, name := range Documents {
		data, err := store.Read(ctx, path, name)
		if err != nil {
			return snap, meta, diags, err
		}
		if want, ok := meta.Checksums[name]; !ok {
			diags.Add(common.WarnChecksumMismatch, "%s has no recorded checksum", name)
		} else if got := Checksum(data); got != want {
			diags.Add(common.WarnChecksumMismatch, "%s checksum %s does not match recorded %s", name, got[:12], want[:min(12, len(want))])
		}
		if err := json.Unmarshal(data, targets[name]); err != nil {
			return snap, meta, diags, fmt.Errorf("decoding %s: %w", name, err)
		}
	}
	return snap, meta, diags, nil
}

// Load reads a snapshot and rebuilds the live tournament from it
func Load(ctx context.Context, store storage.SnapshotStore, path string) (*tournament.Tournament, Metadata, common.Diagnostics, error) {
	snap, meta, diags, err := Read(ctx, store, path)
	if err != nil {
		return nil, meta, diags, err
	}
	t, restoreDiags := tournament.Restore(snap)
	diags.Merge(restoreDiags)
	return t, meta, diags, nil
}

// Copy transfers the raw documents of a snapshot between stores, metadata last
func Copy(ctx context.Context, from, to storage.SnapshotStore, path string) error {
	if _, err := ReadMetadata(ctx, from, path); err != nil {
		return err
	}
	for _, name := range append(Documents[:len(Documents):len(Documents)], MetadataDocument) {
		data, err := from.Read(ctx, path, name)
		if err != nil {
			return err
		}
		if err := to.Write(ctx, path, name, data); err != nil {
			return err
		}
	}
	return nil
}

package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// DefaultHashCacheSize is the number of file hashes a Hasher remembers.
const DefaultHashCacheSize = 4096

type fileStamp struct {
	path    string
	size    int64
	modTime int64
}

// Hasher provides hashing functionality for products and files.
// File hashes are memoized by path, size and modification time.
type Hasher struct {
	memo *lru.Cache[fileStamp, uint64]
}

// NewHasher creates a new Hasher remembering up to size file hashes.
func NewHasher(size int) (*Hasher, error) {
	memo, err := lru.New[fileStamp, uint64](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create hash cache"), "size", size)
	}
	return &Hasher{memo: memo}, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	stamp := fileStamp{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if hash, ok := h.memo.Get(stamp); ok {
		return hash, nil
	}

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	hash := hasher.Sum64()
	h.memo.Add(stamp, hash)
	return hash, nil
}

// ComputeInputHash computes a single hash representing the product definition,
// its build environment and the content of its input files.
func (h *Hasher) ComputeInputHash(product *domain.ResolvedProduct, env []string, inputs []string) (string, error) {
	hasher := xxhash.New()

	hashProductDefinition(product, hasher)
	hashEnvironment(env, hasher)

	for _, input := range inputs {
		if err := h.hashFile(input, hasher); err != nil {
			return "", zerr.With(err, "product", product.Key())
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashProductDefinition(product *domain.ResolvedProduct, hasher *xxhash.Digest) {
	writeField(hasher, product.Key())
	writeField(hasher, string(product.Type))
	writeList(hasher, product.Command)
	writeList(hasher, product.DependencyNames())
	writeField(hasher, product.ExecutablePath)
	writeField(hasher, product.WorkingDir)

	keys := make([]string, 0, len(product.Properties))
	for k := range product.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		writeField(hasher, k+"="+product.Properties[k])
	}
	_, _ = hasher.Write([]byte{0})
}

// hashEnvironment hashes environment entries in a deterministic order.
func hashEnvironment(env []string, hasher *xxhash.Digest) {
	sorted := slices.Clone(env)
	slices.Sort(sorted)
	writeList(hasher, sorted)
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(path))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

func writeList(hasher *xxhash.Digest, items []string) {
	for _, item := range items {
		writeField(hasher, item)
	}
	_, _ = hasher.Write([]byte{0})
}

package hasher

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ChunkSize is the read buffer size used while hashing. Files are streamed
// through the digest in chunks of this size so peak memory stays bounded
// regardless of file size.
const ChunkSize = 64 * 1024

// Algorithm identifies a content digest function
type Algorithm string

const (
	AlgoMD5    Algorithm = "md5"
	AlgoSHA1   Algorithm = "sha1"
	AlgoSHA256 Algorithm = "sha256"
	AlgoXXH64  Algorithm = "xxh64"
)

// DefaultAlgorithm is used when no selector is given
const DefaultAlgorithm = AlgoMD5

// Algorithms lists all supported digest identifiers
func Algorithms() []Algorithm {
	return []Algorithm{AlgoMD5, AlgoSHA1, AlgoSHA256, AlgoXXH64}
}

// New returns a fresh hash state for the given algorithm
func New(algo Algorithm) (hash.Hash, error) {
	switch algo {
	case AlgoMD5:
		return md5.New(), nil
	case AlgoSHA1:
		return sha1.New(), nil
	case AlgoSHA256:
		return sha256.New(), nil
	case AlgoXXH64:
		return xxhash.New(), nil
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", algo)
}

// Valid reports whether algo names a supported algorithm
func Valid(algo Algorithm) bool {
	_, err := New(algo)
	return err == nil
}

// HashFile computes the hex digest of the file's full content, reading it
// in ChunkSize chunks. The context is checked between chunks so an
// in-flight read is abandoned promptly on cancellation.
func HashFile(ctx context.Context, path string, algo Algorithm) (string, error) {
	h, err := New(algo)
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := make([]byte, ChunkSize)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := file.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

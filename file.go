package huffman

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FileOptions configures CompressFile and DecompressFile.  The zero value
// selects the default file names and keeps the text exactly as read.
type FileOptions struct {
	// OutputPath overrides the default output file name.
	OutputPath string

	// TablePath overrides the default location of the CodeTable sidecar.
	// CompressFile writes it and DecompressFile reads it.
	TablePath string

	// Table, if non-nil, is used by DecompressFile instead of reading the
	// sidecar.
	Table *CodeTable

	// TrimTrailingSpace makes CompressFile strip trailing white space from
	// the text before compressing it.
	TrimTrailingSpace bool
}

// CompressedPath returns the default output name for compressing path:
// the extension is replaced by ".bin".
func CompressedPath(path string) string {
	return trimExt(path) + ".bin"
}

// DecompressedPath returns the default output name for decompressing path:
// the extension is replaced by "_decompressed.txt".
func DecompressedPath(path string) string {
	return trimExt(path) + "_decompressed.txt"
}

// TablePath returns the default CodeTable sidecar name for a payload file.
func TablePath(payloadPath string) string {
	return payloadPath + ".codes.json"
}

// CompressFile compresses the text file at path.  The payload is written to
// opts.OutputPath (default CompressedPath(path)) and its CodeTable, as JSON,
// to opts.TablePath (default TablePath of the payload).  It returns the
// payload's path.
//
// Outputs are created atomically: if CompressFile fails, neither file is left
// behind.
//
func CompressFile(path string, opts FileOptions) (string, error) {
	raw, err := readSource(path)
	if err != nil {
		return "", err
	}

	text := string(raw)
	if opts.TrimTrailingSpace {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}

	result, err := Compress(text)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", path, err)
	}

	tableJSON, err := json.Marshal(result.Table)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", path, err)
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = CompressedPath(path)
	}
	tablePath := opts.TablePath
	if tablePath == "" {
		tablePath = TablePath(outPath)
	}

	if err := writeFileAtomic(tablePath, tableJSON); err != nil {
		return "", err
	}
	if err := writeFileAtomic(outPath, result.Payload); err != nil {
		_ = os.Remove(tablePath)
		return "", err
	}

	log.Debugf("compressed %s -> %s (%d -> %d bytes)", path, outPath, len(raw), len(result.Payload))
	return outPath, nil
}

// DecompressFile decompresses the payload file at path.  The CodeTable is
// opts.Table if set, or else is read from opts.TablePath (default
// TablePath(path)).  The text is written to opts.OutputPath (default
// DecompressedPath(path)), whose name is returned.
//
func DecompressFile(path string, opts FileOptions) (string, error) {
	payload, err := readSource(path)
	if err != nil {
		return "", err
	}

	var ct CodeTable
	if opts.Table != nil {
		ct = *opts.Table
	} else {
		tablePath := opts.TablePath
		if tablePath == "" {
			tablePath = TablePath(path)
		}
		tableJSON, err := readSource(tablePath)
		if err != nil {
			return "", err
		}
		if err := json.Unmarshal(tableJSON, &ct); err != nil {
			return "", fmt.Errorf("read code table %s: %w", tablePath, err)
		}
	}

	text, err := Decompress(payload, ct)
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", path, err)
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = DecompressedPath(path)
	}
	if err := writeFileAtomic(outPath, []byte(text)); err != nil {
		return "", err
	}

	log.Debugf("decompressed %s -> %s (%d -> %d bytes)", path, outPath, len(payload), len(text))
	return outPath, nil
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func readSource(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// writeFileAtomic writes data to a temporary file beside path and renames it
// into place once it is complete.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	needRemove := true
	defer func() {
		if needRemove {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	needRemove = false
	return nil
}

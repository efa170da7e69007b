package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"

	"github.com/xenking/invoicing/internal/domain/invoice"
)

// IOError indicates that an export could not be written to Path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FileWriterConfig configures a FileWriter.
type FileWriterConfig struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string
	// Compress gzips every file and appends ".gz" to its name.
	Compress bool
}

// FileWriter writes snapshots to files in a directory.
type FileWriter struct {
	dir      string
	compress bool
}

// NewFileWriter returns a FileWriter for cfg.
func NewFileWriter(cfg FileWriterConfig) *FileWriter {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return &FileWriter{dir: dir, compress: cfg.Compress}
}

// Dir returns the output directory.
func (fw *FileWriter) Dir() string {
	return fw.dir
}

func (fw *FileWriter) name(f Format, nationalID string) string {
	name := FileName(f, nationalID)
	if fw.compress {
		name += ".gz"
	}
	return name
}

// Path returns the file path an export of format f would be written to.
func (fw *FileWriter) Path(f Format, nationalID string) string {
	return filepath.Join(fw.dir, fw.name(f, nationalID))
}

// Export encodes snap in format f and writes it, replacing any previous
// export of the same invoice. It returns the written path. National ids
// rejected by CheckName fail with *InvalidNameError; write failures are
// reported as *IOError.
func (fw *FileWriter) Export(snap invoice.Snapshot, f Format) (string, error) {
	if err := CheckName(snap.NationalID); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, snap, f); err != nil {
		return "", err
	}

	path := fw.Path(f, snap.NationalID)
	if err := fw.write(fw.name(f, snap.NationalID), buf.Bytes()); err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	return path, nil
}

// Encode writes snap to buf in format f.
func Encode(buf *bytes.Buffer, snap invoice.Snapshot, f Format) error {
	switch f {
	case FormatDocument:
		return EncodeDocument(buf, snap)
	case FormatTabular:
		return EncodeTabular(buf, snap)
	default:
		return &UnknownFormatError{Format: string(f)}
	}
}

// write creates name inside the output directory. Opening through os.Root
// keeps symlinks from redirecting the file outside of it.
func (fw *FileWriter) write(name string, data []byte) (rerr error) {
	root, err := os.OpenRoot(fw.dir)
	if err != nil {
		return errors.Wrap(err, "open export dir")
	}
	defer func() { _ = root.Close() }()

	file, err := root.Create(name)
	if err != nil {
		return errors.Wrap(err, "create file")
	}
	defer func() {
		if err := file.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "close file")
		}
	}()

	if !fw.compress {
		if _, err := file.Write(data); err != nil {
			return errors.Wrap(err, "write file")
		}
		return nil
	}

	gz := pgzip.NewWriter(file)
	if _, err := gz.Write(data); err != nil {
		_ = gz.Close()
		return errors.Wrap(err, "write gzip")
	}
	if err := gz.Close(); err != nil {
		return errors.Wrap(err, "flush gzip")
	}
	return nil
}

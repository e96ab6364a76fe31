package dataset

import (
	"fmt"

	"github.com/spf13/afero"
)

// ReadFile reads all records of the dataset at path. It also returns the
// number of skipped lines.
func ReadFile(fs afero.Fs, path string, opts ...ReaderOption) ([]Record, int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := NewReader(f, opts...)
	records, err := r.ReadAll()
	if err != nil {
		return nil, r.Skipped(), fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return records, r.Skipped(), nil
}

// WriteFile writes the normalized records to path, replacing any existing file.
func WriteFile(fs afero.Fs, path, sep string, results []Result) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
	}()

	w := NewWriter(f, sep)
	for _, r := range results {
		if err := w.Write(r.Output()); err != nil {
			return err
		}
	}
	return w.Flush()
}

package loader

import (
	"errors"
	"fmt"
	"io/fs"
)

// DataLoadError reports that the input table could not be located or parsed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether err means the input file does not exist yet.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

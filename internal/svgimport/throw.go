package svgimport

import "github.com/pkg/errors"

// Threading errors through every attribute parser would bury the actual
// parsing. Instead, we use panics, and Load recovers to convert to an error.

type ImportError error

// Panic with an ImportError.
func fatalf(format string, args ...interface{}) {
	panic(ImportError(errors.Errorf(format, args...)))
}

func HandleImportPanicRecover(r interface{}) error {
	if r != nil {
		if importError, ok := r.(ImportError); ok {
			return importError
		}
		panic(r)
	}
	return nil
}

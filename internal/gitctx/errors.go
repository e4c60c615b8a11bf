package gitctx

import "fmt"

// RepositoryError indicates the repository or one of its refs could not
// be used. It is fatal: no analysis runs after it.
type RepositoryError struct {
	Ref string
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("repository error resolving %q: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("repository error: %v", e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// BlobError indicates a single file's content could not be read. It is
// recovered per file: the file is skipped and analysis continues.
type BlobError struct {
	Path string
	Err  error
}

func (e *BlobError) Error() string {
	return fmt.Sprintf("reading %q: %v", e.Path, e.Err)
}

func (e *BlobError) Unwrap() error { return e.Err }

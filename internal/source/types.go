package source

type (
	// FileID uniquely identifies an input file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about an input file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and raw content for a single input file.
// Content is kept byte-for-byte as read: outline files are binary and
// must never be CRLF- or BOM-normalized.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

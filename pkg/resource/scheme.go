package resource

import "strings"

// Kind is the category of backend a Scheme addresses.
type Kind int

const (
	// KindOther is any scheme this module does not know about. It is kept opaque.
	KindOther Kind = iota
	// KindLocalFile addresses the local filesystem.
	KindLocalFile
	// KindUnsavedBuffer addresses an in-memory document with no location of its own.
	KindUnsavedBuffer
	// KindRemoteFile addresses a remote filesystem proxied over a connection.
	KindRemoteFile
)

// Wire names of the known schemes.
const (
	LocalFileName     = "file"
	UnsavedBufferName = "untitled"
	RemoteFileName    = "remote"
)

// Scheme is one of LocalFile, UnsavedBuffer, RemoteFile or Other(raw).
type Scheme struct {
	kind Kind
	raw  string
}

// Known schemes.
var (
	LocalFile     = Scheme{kind: KindLocalFile, raw: LocalFileName}
	UnsavedBuffer = Scheme{kind: KindUnsavedBuffer, raw: UnsavedBufferName}
	RemoteFile    = Scheme{kind: KindRemoteFile, raw: RemoteFileName}
)

// Other returns the opaque scheme for raw.
func Other(raw string) Scheme {
	return Scheme{kind: KindOther, raw: raw}
}

// ParseScheme maps a wire name to its Scheme. Unknown names become Other.
func ParseScheme(raw string) Scheme {
	switch strings.ToLower(raw) {
	case LocalFileName:
		return LocalFile
	case UnsavedBufferName:
		return UnsavedBuffer
	case RemoteFileName:
		return RemoteFile
	default:
		return Other(raw)
	}
}

// Kind returns the scheme category.
func (s Scheme) Kind() Kind {
	return s.kind
}

// String returns the wire name.
func (s Scheme) String() string {
	return s.raw
}

// AddressesFilesystem reports whether the scheme supports real host
// filesystem addressing, local or remote.
func (s Scheme) AddressesFilesystem() bool {
	switch s.kind {
	case KindLocalFile, KindRemoteFile:
		return true
	case KindUnsavedBuffer, KindOther:
		return false
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindLocalFile:
		return "local-file"
	case KindUnsavedBuffer:
		return "unsaved-buffer"
	case KindRemoteFile:
		return "remote-file"
	case KindOther:
		return "other"
	}
	return "unknown"
}

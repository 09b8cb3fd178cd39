package winentity

import (
	"strings"

	"github.com/google/uuid"
)

// TypeTag is a semantic kind marker decoded from an entity's mode token.
type TypeTag string

// PermissionTag is any flag marker decoded from a mode token, including the
// attribute-only flags that never appear as type tags.
type PermissionTag string

const (
	TypeDirectory             TypeTag = "directory"
	TypeArchive               TypeTag = "archive"
	TypeReparsePointOrSymlink TypeTag = "reparse-point-or-symlink"
)

const (
	PermDirectory             PermissionTag = "directory"
	PermArchive               PermissionTag = "archive"
	PermReadOnly              PermissionTag = "read-only"
	PermHidden                PermissionTag = "hidden"
	PermSystem                PermissionTag = "system"
	PermReparsePointOrSymlink PermissionTag = "reparse-point-or-symlink"
)

// Entity is one decoded filesystem object.
//
// Timestamps are kept in the external command's native textual form.
// Entities are plain values: they hold no references to each other and are
// not mutated after decoding.
type Entity struct {
	TypeTags       []TypeTag       `json:"type_tags"`
	PermissionTags []PermissionTag `json:"permission_tags"`
	Owner          string          `json:"owner"`
	Name           string          `json:"name"`
	AbsolutePath   string          `json:"absolute_path"`
	Attributes     string          `json:"attributes"`
	CreationTime   string          `json:"creation_time"`
	LastWriteTime  string          `json:"last_write_time"`
	LastAccessTime string          `json:"last_access_time"`
	Size           int64           `json:"size"`
}

// NewDefaultEntity returns the entity reported when a single-entity query
// decodes no records: only the requested path is set.
func NewDefaultEntity(path string) Entity {
	return Entity{
		TypeTags:       []TypeTag{},
		PermissionTags: []PermissionTag{},
		AbsolutePath:   path,
	}
}

// NamespaceEntityIdentity is the UUID namespace for entity identities,
// derived from "winentity/entity-identity/v1" under the URL namespace.
var NamespaceEntityIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("winentity/entity-identity/v1"))

// ID returns a deterministic UUID v5 for the entity's absolute path.
// Windows paths are case-insensitive, so the path is lowercased first.
func (e Entity) ID() uuid.UUID {
	return uuid.NewSHA1(NamespaceEntityIdentity, []byte(strings.ToLower(e.AbsolutePath)))
}

// HasType reports whether tag is among the entity's type tags.
func (e Entity) HasType(tag TypeTag) bool {
	for _, t := range e.TypeTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTypes reports whether every requested tag is present.
// Only the requested tags are counted, so additional type tags on the
// entity do not affect the result. Duplicate requests count once.
func (e Entity) HasTypes(tags ...TypeTag) bool {
	if len(tags) == 0 {
		return false
	}
	requested := make(map[TypeTag]struct{}, len(tags))
	for _, tag := range tags {
		requested[tag] = struct{}{}
	}
	matched := 0
	for tag := range requested {
		if e.HasType(tag) {
			matched++
		}
	}
	return matched == len(requested)
}

// HasExactTypes reports whether the entity's type tags are exactly the
// requested set, no more and no fewer.
func (e Entity) HasExactTypes(tags ...TypeTag) bool {
	if !e.HasTypes(tags...) {
		return false
	}
	distinct := make(map[TypeTag]struct{}, len(e.TypeTags))
	for _, t := range e.TypeTags {
		distinct[t] = struct{}{}
	}
	requested := make(map[TypeTag]struct{}, len(tags))
	for _, t := range tags {
		requested[t] = struct{}{}
	}
	return len(distinct) == len(requested)
}

func (e Entity) IsDirectory() bool { return e.HasType(TypeDirectory) }

func (e Entity) IsArchive() bool { return e.HasType(TypeArchive) }

func (e Entity) IsReparsePointOrSymlink() bool { return e.HasType(TypeReparsePointOrSymlink) }

func (e Entity) IsDirectoryAndArchive() bool {
	return e.HasTypes(TypeDirectory, TypeArchive)
}

func (e Entity) IsDirectoryAndReparsePointOrSymlink() bool {
	return e.HasTypes(TypeDirectory, TypeReparsePointOrSymlink)
}

func (e Entity) IsArchiveAndReparsePointOrSymlink() bool {
	return e.HasTypes(TypeArchive, TypeReparsePointOrSymlink)
}

func (e Entity) IsDirectoryAndArchiveAndReparsePointOrSymlink() bool {
	return e.HasTypes(TypeDirectory, TypeArchive, TypeReparsePointOrSymlink)
}

// ParseTypeTag maps a user-supplied kind name to a TypeTag.
// Accepts the canonical names plus the short forms "dir", "symlink" and "reparse".
func ParseTypeTag(s string) (TypeTag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directory", "dir", "d":
		return TypeDirectory, true
	case "archive", "a":
		return TypeArchive, true
	case "reparse-point-or-symlink", "symlink", "reparse", "l":
		return TypeReparsePointOrSymlink, true
	}
	return "", false
}

package record

import "github.com/vvka-141/winentity/pkg/winentity"

// modeFlag is what a single mode character contributes.
// typ is empty for attribute-only flags.
type modeFlag struct {
	perm winentity.PermissionTag
	typ  winentity.TypeTag
}

var modeFlags = map[rune]modeFlag{
	'd': {perm: winentity.PermDirectory, typ: winentity.TypeDirectory},
	'a': {perm: winentity.PermArchive, typ: winentity.TypeArchive},
	'r': {perm: winentity.PermReadOnly},
	'h': {perm: winentity.PermHidden},
	's': {perm: winentity.PermSystem},
	'l': {perm: winentity.PermReparsePointOrSymlink, typ: winentity.TypeReparsePointOrSymlink},
}

// DecodeMode scans a mode token such as "d--h-l" character by character.
//
// Permission tags keep the left-to-right order of the qualifying characters
// and are not deduplicated. Type tags form a set in first-seen order.
// Characters other than d, a, r, h, s and l are ignored.
// Both slices are non-nil.
func DecodeMode(token string) ([]winentity.TypeTag, []winentity.PermissionTag) {
	types := []winentity.TypeTag{}
	perms := []winentity.PermissionTag{}

	for _, c := range token {
		f, ok := modeFlags[c]
		if !ok {
			continue
		}
		perms = append(perms, f.perm)
		if f.typ != "" && !containsType(types, f.typ) {
			types = append(types, f.typ)
		}
	}
	return types, perms
}

func containsType(types []winentity.TypeTag, tag winentity.TypeTag) bool {
	for _, t := range types {
		if t == tag {
			return true
		}
	}
	return false
}

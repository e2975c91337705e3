package access

import (
	"sort"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
)

// PermissionSet is the effective permission set for one (user, module)
// pair. It is a computed value, valid only for the lifetime of a
// single decision or navigation request.
type PermissionSet map[rbac.PermissionName]struct{}

// Has reports whether the set contains the permission
func (s PermissionSet) Has(name rbac.PermissionName) bool {
	_, ok := s[name]
	return ok
}

// Names returns the permission names in sorted order
func (s PermissionSet) Names() []rbac.PermissionName {
	names := make([]rbac.PermissionName, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// EffectivePermissions merges role-level grants with the user's
// overrides for one module:
//
//  1. start with the union of grants to every role the user holds,
//     restricted to the module's permission catalog;
//  2. replay overrides in recorded order, a grant adding and a
//     revocation removing the permission, so explicit beats implicit
//     and the last write wins;
//  3. SUPER_ADMIN short-circuits to the full module catalog and skips
//     steps 1-2 entirely. The subscription gate is not bypassed here;
//     that belongs to Decide.
//
// A user with no roles and no overrides resolves to the empty set.
// An override naming a permission outside the module's catalog is
// ignored rather than failing the whole resolution.
func EffectivePermissions(snap *Snapshot, code catalog.Code) PermissionSet {
	set := make(PermissionSet)

	me := snap.FindModule(code)
	if me == nil || snap.User == nil {
		return set
	}

	if snap.User.IsSuperAdmin() {
		for _, name := range me.Catalog {
			set[name] = struct{}{}
		}
		return set
	}

	for _, roleName := range snap.User.RoleNames() {
		for _, name := range me.RoleGrants[roleName] {
			if me.inCatalog(name) {
				set[name] = struct{}{}
			}
		}
	}

	for _, o := range me.Overrides {
		if !me.inCatalog(o.Permission()) {
			continue
		}
		if o.Granted() {
			set[o.Permission()] = struct{}{}
		} else {
			delete(set, o.Permission())
		}
	}

	return set
}

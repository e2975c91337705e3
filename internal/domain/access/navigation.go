package access

import (
	"time"

	"github.com/atriumhq/atrium/internal/domain/rbac"
)

// MenuEntry is one top-level navigation entry for a module the user
// may see, with the child screens they may open.
type MenuEntry struct {
	ModuleCode string      `json:"module_code"`
	Label      string      `json:"label"`
	Route      string      `json:"route"`
	Icon       string      `json:"icon"`
	Children   []MenuChild `json:"children"`
}

// MenuChild is a visible sub-screen of a module.
type MenuChild struct {
	Label string `json:"label"`
	Route string `json:"route"`
	Icon  string `json:"icon"`
}

// BuildMenu computes the navigation menu for the snapshot's user. It
// walks the module catalog in curated order and includes a module only
// when Decide allows the view action on it; within an included module,
// each child screen is included only when its own view permission is
// in the user's effective set. A module whose view is allowed but
// whose children are all hidden still appears, since its landing page
// is itself content.
//
// The menu is recomputed from the snapshot on every call; there is no
// incremental diffing and no cached state.
func BuildMenu(snap *Snapshot, now time.Time) []MenuEntry {
	menu := make([]MenuEntry, 0, len(snap.Modules))

	for i := range snap.Modules {
		me := &snap.Modules[i]
		code := me.Module.Code()

		if !Decide(snap, code, ActionView, now).Allowed {
			continue
		}

		perms := EffectivePermissions(snap, code)

		entry := MenuEntry{
			ModuleCode: code.String(),
			Label:      me.Module.Name(),
			Route:      me.Module.Route(),
			Icon:       me.Module.Icon(),
			Children:   make([]MenuChild, 0, len(me.Module.NavItems())),
		}

		for _, item := range me.Module.NavItems() {
			if !perms.Has(rbac.PermissionName(item.ViewPermission)) {
				continue
			}
			entry.Children = append(entry.Children, MenuChild{
				Label: item.Label,
				Route: item.Route,
				Icon:  item.Icon,
			})
		}

		menu = append(menu, entry)
	}

	return menu
}

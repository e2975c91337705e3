package catalog

import (
	"fmt"
	"time"
)

// Module represents an optional bundle of business functionality that a
// tenant may enable. Modules live in a global product catalog with a
// curated sort order; the sort order drives navigation, not the name.
type Module struct {
	id             uint
	code           Code
	name           string
	icon           string
	route          string
	sortOrder      int
	activeGlobally bool
	navItems       []NavItem
	createdAt      time.Time
	updatedAt      time.Time
}

// NavItem is a child screen of a module. Each item carries the
// permission name required to see it in the navigation tree.
type NavItem struct {
	Label          string
	Route          string
	Icon           string
	ViewPermission string
}

// NewModule creates a new catalog module
func NewModule(code Code, name, icon, route string, sortOrder int) (*Module, error) {
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid module code: %s", code)
	}
	if name == "" {
		return nil, fmt.Errorf("module name is required")
	}

	now := time.Now()
	return &Module{
		code:           code,
		name:           name,
		icon:           icon,
		route:          route,
		sortOrder:      sortOrder,
		activeGlobally: true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructModule reconstructs a module from persistence
func ReconstructModule(
	id uint,
	code Code,
	name, icon, route string,
	sortOrder int,
	activeGlobally bool,
	navItems []NavItem,
	createdAt, updatedAt time.Time,
) (*Module, error) {
	if id == 0 {
		return nil, fmt.Errorf("module ID cannot be zero")
	}
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid module code: %s", code)
	}

	return &Module{
		id:             id,
		code:           code,
		name:           name,
		icon:           icon,
		route:          route,
		sortOrder:      sortOrder,
		activeGlobally: activeGlobally,
		navItems:       navItems,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (m *Module) ID() uint {
	return m.id
}

func (m *Module) Code() Code {
	return m.code
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Icon() string {
	return m.icon
}

func (m *Module) Route() string {
	return m.route
}

func (m *Module) SortOrder() int {
	return m.sortOrder
}

func (m *Module) ActiveGlobally() bool {
	return m.activeGlobally
}

func (m *Module) NavItems() []NavItem {
	return m.navItems
}

func (m *Module) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Module) UpdatedAt() time.Time {
	return m.updatedAt
}

// SetID sets the module ID (only for persistence layer use)
func (m *Module) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("module ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("module ID cannot be zero")
	}
	m.id = id
	return nil
}

// DisableGlobally switches the module off product-wide
func (m *Module) DisableGlobally() {
	if !m.activeGlobally {
		return
	}
	m.activeGlobally = false
	m.updatedAt = time.Now()
}

// EnableGlobally switches the module back on product-wide
func (m *Module) EnableGlobally() {
	if m.activeGlobally {
		return
	}
	m.activeGlobally = true
	m.updatedAt = time.Now()
}

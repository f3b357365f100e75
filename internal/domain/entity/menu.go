package entity

// MenuItem is one entry of the sidebar navigation.
type MenuItem struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Roles  Roles  `json:"-"`
	Active bool   `json:"active"`
}

// Menu returns the full navigation catalogue.
func Menu() []MenuItem {
	everyone := Roles{RoleAdmin, RoleStaff, RoleViewer}

	return []MenuItem{
		{Name: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard", Roles: everyone},
		{Name: "Products", Path: "/products", Icon: "package", Roles: everyone},
		{Name: "Add Product", Path: "/products/create", Icon: "plus-circle", Roles: Roles{RoleAdmin, RoleStaff}},
		{Name: "Low Stock", Path: "/products/low-stock", Icon: "alert-circle", Roles: everyone},
	}
}

// MenuFor filters the menu for a role and marks the entry matching currentPath as active.
func MenuFor(role Role, currentPath string) []MenuItem {
	items := make([]MenuItem, 0, len(Menu()))
	for _, item := range Menu() {
		if !item.Roles.Contains(role) {
			continue
		}
		item.Active = item.Path == currentPath
		items = append(items, item)
	}

	return items
}

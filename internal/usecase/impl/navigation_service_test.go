package impl

import (
	"testing"

	"inventory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func menuPaths(items []entity.MenuItem) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.Path)
	}

	return paths
}

func TestNavigationService_Menu(t *testing.T) {
	srv := NewNavigationService()

	tests := []struct {
		name      string
		role      entity.Role
		paths     []string
		canWrite  bool
		canDelete bool
	}{
		{
			name:      "admin",
			role:      entity.RoleAdmin,
			paths:     []string{"/dashboard", "/products", "/products/create", "/products/low-stock"},
			canWrite:  true,
			canDelete: true,
		},
		{
			name:     "staff",
			role:     entity.RoleStaff,
			paths:    []string{"/dashboard", "/products", "/products/create", "/products/low-stock"},
			canWrite: true,
		},
		{
			name:  "viewer",
			role:  entity.RoleViewer,
			paths: []string{"/dashboard", "/products", "/products/low-stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := srv.Menu(newTestSession(tt.role), "/products")

			assert.Equal(t, tt.paths, menuPaths(nav.Items))
			assert.Equal(t, tt.canWrite, nav.CanWriteProducts)
			assert.Equal(t, tt.canDelete, nav.CanDeleteProducts)
			assert.Equal(t, tt.role, nav.User.Role)

			for _, item := range nav.Items {
				assert.Equal(t, item.Path == "/products", item.Active, item.Path)
			}
		})
	}
}

func TestNavigationService_MenuWithoutSession(t *testing.T) {
	nav := NewNavigationService().Menu(nil, "/dashboard")

	assert.Empty(t, nav.Items)
	assert.False(t, nav.CanWriteProducts)
}

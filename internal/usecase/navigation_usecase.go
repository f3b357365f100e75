package usecase

import (
	"inventory/internal/domain/entity"
)

// Navigation is the sidebar and header state for the current session.
type Navigation struct {
	User              entity.User       `json:"user"`
	Items             []entity.MenuItem `json:"items"`
	CanWriteProducts  bool              `json:"canWriteProducts"`
	CanDeleteProducts bool              `json:"canDeleteProducts"`
}

// NavigationUsecase computes role-filtered navigation.
type NavigationUsecase interface {
	Menu(session *entity.Session, currentPath string) *Navigation
}

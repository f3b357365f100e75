package impl

import (
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"
)

type navigationService struct{}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService() usecase.NavigationUsecase {
	return &navigationService{}
}

func (srv *navigationService) Menu(session *entity.Session, currentPath string) *usecase.Navigation {
	role := session.Role()

	nav := &usecase.Navigation{
		Items:             entity.MenuFor(role, currentPath),
		CanWriteProducts:  role.CanWriteProducts(),
		CanDeleteProducts: role.CanDeleteProducts(),
	}
	if session != nil {
		nav.User = session.User
	}

	return nav
}

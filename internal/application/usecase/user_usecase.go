package usecase

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// UserUseCase administración de usuarios: asignación de rol y baja.
type UserUseCase struct {
	repo        repository.UserRepository
	invalidator sales.ReportInvalidator
	log         *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia. invalidator puede ser nil.
func NewUserUseCase(repo repository.UserRepository, invalidator sales.ReportInvalidator, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, invalidator: invalidator, log: log}
}

// AssignRole cambia el rol del usuario. Rol desconocido → ErrInvalidInput; usuario inexistente → ErrUserNotFound.
func (uc *UserUseCase) AssignRole(ctx context.Context, userID, roleType string) (*dto.UserResponse, error) {
	if !entity.IsValidRoleType(roleType) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.SetRole(ctx, userID, roleType); err != nil {
		return nil, err
	}
	user.Role = roleType
	return auth.ToUserResponse(user), nil
}

// Delete da de baja al usuario. Sus ventas quedan sin vendedor. Un usuario no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, p access.Principal, userID string) error {
	if p.UserID == userID {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(ctx, userID); err != nil {
		return err
	}
	// el vendedor top puede cambiar
	sales.InvalidateReports(ctx, uc.invalidator, uc.log)
	return nil
}

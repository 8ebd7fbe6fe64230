package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SignupPermissions permisos directos que recibe todo usuario registrado.
var SignupPermissions = []string{entity.PermViewSale}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Signup crea un usuario con rol cliente y el permiso base view_venta, y lo deja con sesión iniciada.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.LoginResponse, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCliente,
		Permissions:  append([]string(nil), SignupPermissions...),
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(ctx, user)
}

// Login verifica username/password, resuelve los permisos y genera el JWT.
// Usuario inexistente o password incorrecto → ErrUnauthorized; usuario inactivo → ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	return uc.issue(ctx, user)
}

// Principal resuelve el principal actual de un usuario (rol ∪ permisos directos).
func (uc *AuthUseCase) Principal(ctx context.Context, user *entity.User) (access.Principal, error) {
	var role *entity.Role
	if user.Role != "" {
		r, err := uc.roleRepo.GetByType(ctx, user.Role)
		if err != nil {
			return access.Principal{}, err
		}
		role = r
	}
	return access.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Permissions: access.ResolvePermissions(user, role),
	}, nil
}

func (uc *AuthUseCase) issue(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	p, err := uc.Principal(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID:      p.UserID,
		Username:    p.Username,
		Role:        p.Role,
		Permissions: p.Permissions,
	})
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	resp.Permissions = p.Permissions
	return &dto.LoginResponse{Token: token, User: *resp}, nil
}

// IsCredentialsError indica si err corresponde a credenciales inválidas.
func IsCredentialsError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// ToUserResponse convierte un usuario en su DTO (permisos directos).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
		Permissions: perms,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
	}
}

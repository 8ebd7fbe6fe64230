package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/memstore"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Tienda-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func newAuth(t *testing.T) (*memstore.Store, *auth.AuthUseCase) {
	t.Helper()
	store := memstore.New()
	for _, rt := range entity.RoleTypes {
		require.NoError(t, store.Roles().Upsert(context.Background(), &entity.Role{
			Type:        rt,
			Permissions: entity.DefaultRolePermissions[rt],
		}))
	}
	return store, auth.NewAuthUseCase(store.Users(), store.Roles(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "tienda-test"})
}

func addUser(t *testing.T, store *memstore.Store, u entity.User, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u.PasswordHash = string(hash)
	if u.Status == "" {
		u.Status = entity.UserStatusActive
	}
	store.AddUser(u)
}

func TestSignup_ClienteConViewVentaYToken(t *testing.T) {
	_, uc := newAuth(t)

	resp, err := uc.Signup(context.Background(), dto.SignupRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCliente, resp.User.Role)
	assert.Equal(t, []string{entity.PermViewSale}, resp.User.Permissions)

	id, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", id.Username)
	assert.Equal(t, []string{entity.PermViewSale}, id.Permissions)
}

func TestSignup_UsernameDuplicado(t *testing.T) {
	_, uc := newAuth(t)
	_, err := uc.Signup(context.Background(), dto.SignupRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), dto.SignupRequest{Username: "ana", Password: "otra12345"})
	assert.True(t, errors.Is(err, domain.ErrUsernameTaken))
}

func TestLogin_ResuelvePermisosDelRol(t *testing.T) {
	store, uc := newAuth(t)
	addUser(t, store, entity.User{ID: "u-ger", Username: "gerente", Role: entity.RoleGerente}, "gerente123")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "gerente", Password: "gerente123"})
	require.NoError(t, err)

	id, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.DefaultRolePermissions[entity.RoleGerente], id.Permissions)
	assert.Equal(t, entity.RoleGerente, id.Role)
}

func TestLogin_SuperusuarioTieneTodo(t *testing.T) {
	store, uc := newAuth(t)
	addUser(t, store, entity.User{ID: "u-admin", Username: "admin", IsSuperuser: true}, "admin123")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.AllPermissionCodenames(), resp.User.Permissions)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	store, uc := newAuth(t)
	addUser(t, store, entity.User{ID: "u-1", Username: "vendedor", Role: entity.RoleVendedor}, "vendedor123")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "vendedor", Password: "mala"})
	assert.True(t, auth.IsCredentialsError(err))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.True(t, auth.IsCredentialsError(err))
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	store, uc := newAuth(t)
	addUser(t, store, entity.User{ID: "u-1", Username: "viejo", Status: entity.UserStatusInactive}, "viejo1234")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "viejo", Password: "viejo1234"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/memstore"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

func TestRoleUseCase_UpdateReemplazaPermisos(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewRoleUseCase(store.Roles())
	desc := "Atiende el mostrador"

	out, err := uc.Update(context.Background(), entity.RoleVendedor, dto.UpdateRoleRequest{
		Description: &desc,
		Permissions: []string{entity.PermViewSale, entity.PermAddSale, entity.PermViewSale},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermAddSale, entity.PermViewSale}, out.Permissions)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Roles, 1)
	assert.Equal(t, desc, list.Roles[0].Description)
	assert.Len(t, list.Permissions, len(entity.AllPermissions))
}

func TestRoleUseCase_Update_Errores(t *testing.T) {
	uc := usecase.NewRoleUseCase(memstore.New().Roles())

	_, err := uc.Update(context.Background(), "superheroe", dto.UpdateRoleRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Update(context.Background(), entity.RoleGerente, dto.UpdateRoleRequest{Permissions: []string{"borrar_todo"}})
	assert.True(t, errors.Is(err, domain.ErrUnknownPermission))
}

func TestUserUseCase_AssignRole(t *testing.T) {
	store := memstore.New()
	store.AddUser(entity.User{ID: "u-1", Username: "ana", Role: entity.RoleCliente})
	uc := usecase.NewUserUseCase(store.Users(), nil, nil)

	out, err := uc.AssignRole(context.Background(), "u-1", entity.RoleGerente)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGerente, out.Role)

	_, err = uc.AssignRole(context.Background(), "u-1", "jefe")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = uc.AssignRole(context.Background(), "u-x", entity.RoleAdmin)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserUseCase_Delete_VentasQuedanSinVendedor(t *testing.T) {
	store := memstore.New()
	store.AddUser(entity.User{ID: "u-1", Username: "vendedor"})
	cat := store.AddCategory("Ropa")
	prod := store.AddProduct(cat, "Jeans", "60.00", 5)
	seller := "u-1"
	store.AddSale(prod, 1, "60.00", time.Now(), &seller)
	uc := usecase.NewUserUseCase(store.Users(), nil, nil)
	admin := access.Principal{UserID: "u-admin"}

	require.NoError(t, uc.Delete(context.Background(), admin, "u-1"))

	records, err := store.Sales().List(context.Background(), repository.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].SellerID)
	assert.Nil(t, records[0].SellerUsername)

	assert.True(t, errors.Is(uc.Delete(context.Background(), admin, "u-1"), domain.ErrUserNotFound))
	assert.True(t, errors.Is(uc.Delete(context.Background(), admin, "u-admin"), domain.ErrInvalidInput))
}

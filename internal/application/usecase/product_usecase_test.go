package usecase_test

import (
	"testing"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) ListActive() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.Active {
			c := *p
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	c := *p
	r.products[p.ID] = &c
	return nil
}

type memOperationRepo struct {
	operations []entity.Operation
}

func (r *memOperationRepo) Create(op *entity.Operation) error {
	op.ID = int64(len(r.operations) + 1)
	r.operations = append(r.operations, *op)
	return nil
}

func (r *memOperationRepo) ListByProduct(productID int64) ([]entity.Operation, error) {
	var list []entity.Operation
	for _, op := range r.operations {
		if op.ProductID == productID {
			list = append(list, op)
		}
	}
	return list, nil
}

func newUC() (*usecase.ProductUseCase, *memProductRepo, *memOperationRepo) {
	repo := newMemProductRepo()
	ops := &memOperationRepo{}
	return usecase.NewProductUseCase(repo, ops), repo, ops
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SiempreNaceActivo(t *testing.T) {
	uc, _, _ := newUC()

	inactivo := false
	out, err := uc.Create(dto.CreateProductRequest{
		Name:          "Martillo",
		PurchasePrice: decimal.NewFromInt(5),
		SalePrice:     decimal.NewFromInt(8),
		Quantity:      10,
		Active:        &inactivo, // la entrada pide inactivo: se ignora
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.NotZero(t, out.ID)
}

func TestCreate_RechazaNegativos(t *testing.T) {
	uc, _, _ := newUC()

	_, err := uc.Create(dto.CreateProductRequest{Name: "Martillo", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Martillo", PurchasePrice: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListActive_ExcluyeInactivos(t *testing.T) {
	uc, _, _ := newUC()

	a, err := uc.Create(dto.CreateProductRequest{Name: "A"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{Name: "B"})
	require.NoError(t, err)

	_, err = uc.Deactivate(b.ID)
	require.NoError(t, err)

	list, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestListActive_VacioNoEsError(t *testing.T) {
	uc, _, _ := newUC()

	list, err := uc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByID_IncluyeOperaciones(t *testing.T) {
	uc, _, ops := newUC()

	p, err := uc.Create(dto.CreateProductRequest{Name: "A"})
	require.NoError(t, err)

	require.NoError(t, ops.Create(&entity.Operation{
		ProductID: p.ID,
		Kind:      entity.OperationPurchase,
		Quantity:  2,
		Price:     decimal.NewFromInt(3),
		Total:     decimal.NewFromInt(6),
	}))

	out, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	require.Len(t, out.Operations, 1)
	assert.Equal(t, "6", out.Operations[0].Total.String())
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _, _ := newUC()

	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_Parcial(t *testing.T) {
	uc, _, _ := newUC()

	p, err := uc.Create(dto.CreateProductRequest{
		Name:          "A",
		Description:   "original",
		PurchasePrice: decimal.NewFromInt(5),
		SalePrice:     decimal.NewFromInt(8),
		Quantity:      10,
	})
	require.NoError(t, err)

	out, err := uc.Update(p.ID, dto.UpdateProductRequest{
		Name:     ptr("A2"),
		Quantity: ptr(int64(20)),
	})
	require.NoError(t, err)
	assert.Equal(t, "A2", out.Name)
	assert.Equal(t, int64(20), out.Quantity)
	// lo no incluido en el patch se conserva
	assert.Equal(t, "original", out.Description)
	assert.Equal(t, "8", out.SalePrice.String())
}

func TestUpdate_NoReactiva(t *testing.T) {
	uc, _, _ := newUC()

	p, err := uc.Create(dto.CreateProductRequest{Name: "A"})
	require.NoError(t, err)
	_, err = uc.Deactivate(p.ID)
	require.NoError(t, err)

	out, err := uc.Update(p.ID, dto.UpdateProductRequest{Name: ptr("A2")})
	require.NoError(t, err)
	assert.False(t, out.Active, "Update no restaura el estado activo")
}

func TestUpdate_Inexistente(t *testing.T) {
	uc, _, _ := newUC()

	_, err := uc.Update(999, dto.UpdateProductRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivate_EsIdempotenteEnEfecto(t *testing.T) {
	uc, _, _ := newUC()

	p, err := uc.Create(dto.CreateProductRequest{Name: "A"})
	require.NoError(t, err)

	out, err := uc.Deactivate(p.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)

	// segunda llamada: inocua, no es error
	out, err = uc.Deactivate(p.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)
}

func TestDeactivate_Inexistente(t *testing.T) {
	uc, _, _ := newUC()

	_, err := uc.Deactivate(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

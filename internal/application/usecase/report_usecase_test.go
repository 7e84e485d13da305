package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/application/usecase"
	"github.com/retailchain/franchise-api/internal/domain"
	"github.com/retailchain/franchise-api/internal/domain/entity"
)

type reportFixture struct {
	uc         *usecase.StockReportUseCase
	franchises *fakeFranchiseRepo
	branches   *fakeBranchRepo
	products   *fakeProductRepo
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := &reportFixture{
		franchises: newFakeFranchiseRepo(),
		branches:   newFakeBranchRepo(),
		products:   newFakeProductRepo(),
	}
	f.uc = usecase.NewStockReportUseCase(f.franchises, f.branches, f.products)
	return f
}

func (f *reportFixture) addProduct(t *testing.T, branchID int64, name string, stock int) {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{Name: name, Stock: stock, BranchID: branchID}))
}

func TestReportMaxStockPerBranchWithTies(t *testing.T) {
	f := newReportFixture(t)
	require.NoError(t, f.franchises.Create(&entity.Franchise{Name: "Acme"}))
	require.NoError(t, f.branches.Create(&entity.Branch{Name: "Centro", FranchiseID: 1}))
	require.NoError(t, f.branches.Create(&entity.Branch{Name: "Norte", FranchiseID: 1}))

	// Sucursal 1: máximo único (30). Sucursal 2: empate doble en 30.
	f.addProduct(t, 1, "Tornillos", 10)
	f.addProduct(t, 1, "Tuercas", 30)
	f.addProduct(t, 2, "Clavos", 30)
	f.addProduct(t, 2, "Arandelas", 30)

	rows, err := f.uc.GetMaxStockReport(1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byProduct := map[string]dto.StockReportResponse{}
	for _, r := range rows {
		byProduct[r.ProductName] = r
	}
	assert.NotContains(t, byProduct, "Tornillos")

	assert.Equal(t, int64(1), byProduct["Tuercas"].BranchID)
	assert.Equal(t, "Centro", byProduct["Tuercas"].BranchName)
	assert.Equal(t, 30, byProduct["Tuercas"].Stock)

	// Los empates se incluyen todos, no se elige uno arbitrario
	assert.Equal(t, "Norte", byProduct["Clavos"].BranchName)
	assert.Equal(t, "Norte", byProduct["Arandelas"].BranchName)

	for _, r := range rows {
		assert.Equal(t, int64(1), r.FranchiseID)
		assert.Equal(t, "Acme", r.FranchiseName)
	}
}

func TestReportEmptyFranchise(t *testing.T) {
	f := newReportFixture(t)
	require.NoError(t, f.franchises.Create(&entity.Franchise{Name: "Acme"}))

	// Sin sucursales: reporte vacío, nunca nil ni error
	rows, err := f.uc.GetMaxStockReport(1)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	// Con sucursal pero sin productos, igual
	require.NoError(t, f.branches.Create(&entity.Branch{Name: "Centro", FranchiseID: 1}))
	rows, err = f.uc.GetMaxStockReport(1)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestReportMissingFranchise(t *testing.T) {
	f := newReportFixture(t)

	rows, err := f.uc.GetMaxStockReport(99)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, domain.ErrFranchiseNotFound)
}

func TestReportIgnoresOtherFranchises(t *testing.T) {
	f := newReportFixture(t)
	require.NoError(t, f.franchises.Create(&entity.Franchise{Name: "Acme"}))
	require.NoError(t, f.franchises.Create(&entity.Franchise{Name: "Beta"}))
	require.NoError(t, f.branches.Create(&entity.Branch{Name: "Centro", FranchiseID: 1}))
	require.NoError(t, f.branches.Create(&entity.Branch{Name: "Ajena", FranchiseID: 2}))

	f.addProduct(t, 1, "Tornillos", 5)
	f.addProduct(t, 2, "Intruso", 999)

	rows, err := f.uc.GetMaxStockReport(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tornillos", rows[0].ProductName)
}

package service

import (
	"context"
	"testing"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCrearProductoConMinimoPorDefecto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, &stubAlertaService{}, nil)

	resp, err := svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Codigo: "AR-001", Nombre: "Arroz", Precio: decimal.NewFromInt(10), Stock: intPtr(40),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	p := repo.productos[resp.ID]
	require.NotNil(t, p)
	assert.Equal(t, 5, p.StockMinimo)
	assert.True(t, p.Activo)
}

func TestCrearProductoCodigoDuplicado(t *testing.T) {
	repo := newStubProductoRepo(producto(1, "AR-001", 40, 5))
	svc := NewProductoService(repo, &stubAlertaService{}, nil)

	_, err := svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Codigo: "AR-001", Nombre: "Arroz", Precio: decimal.NewFromInt(10), Stock: intPtr(40),
	})
	assert.ErrorIs(t, err, ErrCodigoDuplicado)
}

func TestActualizarProductoStockBajoNotifica(t *testing.T) {
	repo := newStubProductoRepo(producto(1, "Arroz", 40, 5))
	alertas := &stubAlertaService{}
	svc := NewProductoService(repo, alertas, nil)

	err := svc.ActualizarProducto(context.Background(), dto.ActualizarProductoRequest{
		ID: 1, Stock: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, repo.productos[1].Stock)
	require.Len(t, alertas.batches, 1)
	assert.Equal(t, "Arroz", alertas.batches[0][0].Nombre)
}

func TestActualizarProductoStockSanoNoNotifica(t *testing.T) {
	repo := newStubProductoRepo(producto(1, "Arroz", 40, 5))
	alertas := &stubAlertaService{}
	svc := NewProductoService(repo, alertas, nil)

	err := svc.ActualizarProducto(context.Background(), dto.ActualizarProductoRequest{
		ID: 1, Stock: intPtr(30),
	})
	require.NoError(t, err)
	assert.Empty(t, alertas.batches)
}

func TestListarAlertasStockSinRedis(t *testing.T) {
	repo := newStubProductoRepo(
		producto(1, "Arroz", 2, 5),
		producto(2, "Fideos", 50, 5),
	)
	svc := NewProductoService(repo, &stubAlertaService{}, nil)

	items, err := svc.ListarAlertasStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Arroz", items[0].Nombre)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianLames/Sistema-Pedidos/internal/config"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/middleware"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPedidoService returns canned results per method.
type stubPedidoService struct {
	crearResp  *dto.CrearPedidoResponse
	crearErr   error
	actAlertas []dto.AlertaStock
	actErr     error
	enviarErr  error
}

func (s *stubPedidoService) CrearPedido(_ context.Context, _ uint, _ dto.CrearPedidoRequest) (*dto.CrearPedidoResponse, error) {
	return s.crearResp, s.crearErr
}

func (s *stubPedidoService) ActualizarEstado(_ context.Context, _ uint, _ dto.ActualizarEstadoRequest) ([]dto.AlertaStock, error) {
	return s.actAlertas, s.actErr
}

func (s *stubPedidoService) EnviarABodega(_ context.Context, _ dto.EnviarABodegaRequest) error {
	return s.enviarErr
}

func (s *stubPedidoService) ListarPedidos(_ context.Context) ([]dto.PedidoListItem, error) {
	return nil, nil
}

func (s *stubPedidoService) ObtenerDetalle(_ context.Context, _ uint) (*dto.PedidoDetalleResponse, error) {
	return nil, service.ErrPedidoNoEncontrado
}

var _ service.PedidoService = (*stubPedidoService)(nil)

func pedidosRouter(svc service.PedidoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	// Inject claims the way TokenAuth would
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &dto.UsuarioPublico{ID: 7, Nombre: "Test", Rol: "recepcionista"})
	})
	h := NewPedidosHandler(svc, &config.Config{})
	r.POST("/orders/create", h.Crear)
	r.POST("/orders/update_status", h.ActualizarEstado)
	r.POST("/orders/send_to_warehouse", h.EnviarABodega)
	r.GET("/orders/get_details", h.Detalle)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrearPedidoSinProductosResponde400(t *testing.T) {
	r := pedidosRouter(&stubPedidoService{})

	w := doJSON(t, r, http.MethodPost, "/orders/create", dto.CrearPedidoRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "No hay productos en el pedido", resp["message"])
}

func TestCrearPedidoStockInsuficienteResponde503(t *testing.T) {
	svc := &stubPedidoService{crearErr: &service.ErrStockInsuficiente{ProductoID: 2}}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/create", dto.CrearPedidoRequest{
		Detalles: []dto.DetallePedidoRequest{{ProductoID: 2, Cantidad: 1}},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "Error al crear pedido")
	assert.Contains(t, resp["message"], "Stock insuficiente")
}

func TestCrearPedidoFalloDeBaseResponde503(t *testing.T) {
	svc := &stubPedidoService{crearErr: errors.New("driver: bad connection")}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/create", dto.CrearPedidoRequest{
		Detalles: []dto.DetallePedidoRequest{{ProductoID: 1, Cantidad: 1}},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "Error al crear pedido")
}

func TestActualizarEstadoFalloDeBaseResponde503(t *testing.T) {
	svc := &stubPedidoService{actErr: errors.New("driver: bad connection")}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/update_status", dto.ActualizarEstadoRequest{
		PedidoID: 1, Estado: "camino",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error al actualizar estado", resp["message"])
}

func TestEnviarABodegaFalloDeBaseResponde503(t *testing.T) {
	svc := &stubPedidoService{enviarErr: errors.New("driver: bad connection")}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/send_to_warehouse", dto.EnviarABodegaRequest{PedidoID: 1})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Error:")
}

func TestActualizarEstadoConflictoResponde409(t *testing.T) {
	svc := &stubPedidoService{actErr: &service.ErrStockInsuficiente{ProductoID: 3}}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/update_status", dto.ActualizarEstadoRequest{
		PedidoID: 1, Estado: "preparacion",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestActualizarEstadoTransicionInvalidaResponde400(t *testing.T) {
	svc := &stubPedidoService{actErr: &service.ErrTransicionInvalida{Desde: "entregado", Hacia: "pendiente"}}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/update_status", dto.ActualizarEstadoRequest{
		PedidoID: 1, Estado: "pendiente",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActualizarEstadoDevuelveStockAlerta(t *testing.T) {
	svc := &stubPedidoService{actAlertas: []dto.AlertaStock{{Nombre: "Arroz", Stock: 2, StockMinimo: 5}}}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/update_status", dto.ActualizarEstadoRequest{
		PedidoID: 1, Estado: "preparacion",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ActualizarEstadoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.StockAlerta, 1)
	assert.Equal(t, "Arroz", resp.StockAlerta[0].Nombre)
}

func TestEnviarABodegaStockInsuficienteResponde503(t *testing.T) {
	svc := &stubPedidoService{enviarErr: &service.ErrStockInsuficiente{ProductoID: 4}}
	r := pedidosRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/orders/send_to_warehouse", dto.EnviarABodegaRequest{PedidoID: 1})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDetallePedidoInexistenteResponde404(t *testing.T) {
	r := pedidosRouter(&stubPedidoService{})

	w := doJSON(t, r, http.MethodGet, "/orders/get_details?order_id=99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

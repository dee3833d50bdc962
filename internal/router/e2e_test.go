//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianLames/Sistema-Pedidos/internal/config"
	"github.com/adrianLames/Sistema-Pedidos/internal/infra"
	"github.com/adrianLames/Sistema-Pedidos/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type testEnv struct {
	server *httptest.Server
	token  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("pedidos_test"),
		tcPostgres.WithUsername("pedidos"),
		tcPostgres.WithPassword("pedidos"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	redisC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	redisURL, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		DatabaseURL:        pgURL,
		RedisURL:           redisURL,
		JWTSecret:          "e2e-secret",
		JWTExpirationHours: 1,
		WorkerPoolSize:     1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv}

	// Bootstrap an admin and log in
	resp := env.post(t, "/users/create", map[string]any{
		"nombre": "Admin", "email": "admin@test.local", "password": "1234", "rol": "admin",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	resp = env.post(t, "/auth/login", map[string]any{"email": "admin@test.local", "password": "1234"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	require.NotEmpty(t, login.Token)
	env.token = login.Token

	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) post(t *testing.T, path string, body any, token string) *http.Response {
	return e.request(t, http.MethodPost, path, body, token)
}

func (e *testEnv) decode(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func (e *testEnv) crearProducto(t *testing.T, codigo string, stock, minimo int) uint {
	t.Helper()
	var out struct {
		ID uint `json:"id"`
	}
	resp := e.post(t, "/products/create", map[string]any{
		"codigo": codigo, "nombre": "Producto " + codigo, "precio": "10.50",
		"stock": stock, "stock_minimo": minimo,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	e.decode(t, resp, &out)
	return out.ID
}

func TestE2EOrderLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	p1 := env.crearProducto(t, "AR-001", 50, 5)
	p2 := env.crearProducto(t, "FI-001", 50, 5)

	// Create an order
	var created struct {
		Success      bool   `json:"success"`
		CodigoPedido string `json:"codigo_pedido"`
		PedidoID     uint   `json:"pedido_id"`
	}
	resp := env.post(t, "/orders/create", map[string]any{
		"detalles": []map[string]any{
			{"producto_id": p1, "cantidad": 5, "precio_unitario": "10.50"},
			{"producto_id": p2, "cantidad": 3, "precio_unitario": "8.00"},
		},
	}, env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env.decode(t, resp, &created)
	assert.Regexp(t, `^PED\d{11}$`, created.CodigoPedido)

	// pendiente → preparacion → camino → entregado
	for _, estado := range []string{"preparacion", "camino", "entregado"} {
		resp = env.post(t, "/orders/update_status", map[string]any{
			"pedido_id": created.PedidoID, "estado": estado,
		}, env.token)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "estado %s", estado)
		resp.Body.Close()
	}

	// Backwards transition is rejected
	resp = env.post(t, "/orders/update_status", map[string]any{
		"pedido_id": created.PedidoID, "estado": "pendiente",
	}, env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestE2ECreateOrderInsufficientStockRollsBack(t *testing.T) {
	env := setupTestEnv(t)
	p1 := env.crearProducto(t, "AR-002", 50, 5)
	p2 := env.crearProducto(t, "FI-002", 2, 5)

	resp := env.post(t, "/orders/create", map[string]any{
		"detalles": []map[string]any{
			{"producto_id": p1, "cantidad": 10, "precio_unitario": "10.50"},
			{"producto_id": p2, "cantidad": 10, "precio_unitario": "8.00"},
		},
	}, env.token)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	// The rollback left no order behind
	var list struct {
		Orders []map[string]any `json:"orders"`
	}
	resp = env.request(t, http.MethodGet, "/orders/get_all", nil, env.token)
	env.decode(t, resp, &list)
	assert.Empty(t, list.Orders)

	// But the low-stock notification survived
	var notifs struct {
		Notifications []struct {
			Tipo    string `json:"tipo"`
			Mensaje string `json:"mensaje"`
		} `json:"notifications"`
	}
	resp = env.request(t, http.MethodGet, "/admin/notifications", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.decode(t, resp, &notifs)
	require.NotEmpty(t, notifs.Notifications)
	assert.Contains(t, notifs.Notifications[0].Mensaje, "Stock bajo en")
}

func TestE2EProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{"/orders/get_all", "/products/stock_alert", "/users/get_all"} {
		resp := env.request(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestE2EAdminRoutesRejectNonAdmin(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.post(t, "/users/create", map[string]any{
		"nombre": "Bodega", "email": "bodega@test.local", "password": "1234", "rol": "bodeguero",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var login struct {
		Token string `json:"token"`
	}
	resp = env.post(t, "/auth/login", map[string]any{"email": "bodega@test.local", "password": "1234"}, "")
	env.decode(t, resp, &login)

	resp = env.request(t, http.MethodGet, "/admin/notifications", nil, login.Token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestE2EAdminNotificationsOrderAndCap(t *testing.T) {
	env := setupTestEnv(t)

	crear := func(mensaje string) uint {
		var out struct {
			ID uint `json:"id"`
		}
		resp := env.post(t, "/admin/notifications", map[string]any{"mensaje": mensaje}, env.token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		env.decode(t, resp, &out)
		return out.ID
	}
	listar := func() []struct {
		Mensaje string `json:"mensaje"`
		Leida   bool   `json:"leida"`
	} {
		var body struct {
			Notifications []struct {
				Mensaje string `json:"mensaje"`
				Leida   bool   `json:"leida"`
			} `json:"notifications"`
		}
		resp := env.request(t, http.MethodGet, "/admin/notifications", nil, env.token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		env.decode(t, resp, &body)
		return body.Notifications
	}

	ids := make([]uint, 0, 55)
	for i := 1; i <= 6; i++ {
		ids = append(ids, crear(fmt.Sprintf("aviso %02d", i)))
	}

	// Mark the two middle rows read: unread come first, each group newest-first
	for _, id := range []uint{ids[2], ids[3]} {
		resp := env.request(t, http.MethodPut, "/admin/notifications", map[string]any{"id": id}, env.token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	notifs := listar()
	require.Len(t, notifs, 6)
	orden := make([]string, 0, 6)
	for _, n := range notifs {
		orden = append(orden, n.Mensaje)
	}
	assert.Equal(t, []string{"aviso 06", "aviso 05", "aviso 02", "aviso 01", "aviso 04", "aviso 03"}, orden)
	assert.False(t, notifs[0].Leida)
	assert.True(t, notifs[5].Leida)

	// Fill past the cap: the listing never exceeds 50 rows
	for i := 7; i <= 55; i++ {
		crear(fmt.Sprintf("aviso %02d", i))
	}
	notifs = listar()
	require.Len(t, notifs, 50)
	assert.Equal(t, "aviso 55", notifs[0].Mensaje)
	for _, n := range notifs {
		assert.False(t, n.Leida)
	}
}

func TestE2EDuplicateEmailAndCodigo(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.post(t, "/users/create", map[string]any{
		"nombre": "Otro", "email": "admin@test.local", "password": "1234", "rol": "admin",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	env.crearProducto(t, "DUP-01", 10, 5)
	resp = env.post(t, "/products/create", map[string]any{
		"codigo": "DUP-01", "nombre": "Duplicado", "precio": "1.00", "stock": 1,
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService returns canned login/validate results.
type stubAuthService struct {
	loginResp    *dto.LoginResponse
	loginErr     error
	validateUser *dto.UsuarioPublico
	validateErr  error
}

func (s *stubAuthService) Login(_ context.Context, _ dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Validate(_ context.Context, _ string) (*dto.UsuarioPublico, error) {
	return s.validateUser, s.validateErr
}

func (s *stubAuthService) CrearUsuario(_ context.Context, _ dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error) {
	return nil, nil
}

func (s *stubAuthService) ActualizarUsuario(_ context.Context, _ dto.ActualizarUsuarioRequest) error {
	return nil
}

func (s *stubAuthService) ListarUsuarios(_ context.Context) ([]dto.UsuarioPublico, error) {
	return nil, nil
}

var _ service.AuthService = (*stubAuthService)(nil)

func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/validate", h.Validate)
	return r
}

func doJSONWithAuth(t *testing.T, r *gin.Engine, method, path, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginUsuarioInexistenteResponde404(t *testing.T) {
	r := authRouter(&stubAuthService{loginErr: service.ErrUsuarioNoEncontrado})

	w := doJSON(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{
		Email: "nadie@pedidos.local", Password: "1234",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Usuario no encontrado", resp["message"])
}

func TestLoginPasswordIncorrectaResponde401(t *testing.T) {
	r := authRouter(&stubAuthService{loginErr: service.ErrCredenciales})

	w := doJSON(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{
		Email: "ana@pedidos.local", Password: "mala",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSinCamposResponde400(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{"email": "ana@pedidos.local"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateSinTokenResponde400(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := doJSON(t, r, http.MethodGet, "/auth/validate", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Token no proporcionado", resp["message"])
}

func TestValidateTokenInvalidoResponde401(t *testing.T) {
	r := authRouter(&stubAuthService{validateErr: service.ErrTokenInvalido})

	req := doJSONWithAuth(t, r, http.MethodGet, "/auth/validate", "Bearer basura")
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestValidateTokenValidoDevuelveUsuario(t *testing.T) {
	r := authRouter(&stubAuthService{validateUser: &dto.UsuarioPublico{ID: 7, Nombre: "Ana", Rol: "admin"}})

	w := doJSONWithAuth(t, r, http.MethodGet, "/auth/validate", "Bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		User    dto.UsuarioPublico `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(7), resp.User.ID)
}

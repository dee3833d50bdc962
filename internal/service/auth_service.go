package service

import (
	"context"
	"strings"
	"time"

	"github.com/adrianLames/Sistema-Pedidos/internal/config"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Validate checks the token signature and expiry, then re-reads the user
	// so a deactivated account is rejected even with a live token.
	Validate(ctx context.Context, tokenStr string) (*dto.UsuarioPublico, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, req dto.ActualizarUsuarioRequest) error
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioPublico, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    usuarioToPublico(user),
	}, nil
}

func (s *authService) Validate(ctx context.Context, tokenStr string) (*dto.UsuarioPublico, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrTokenInvalido
	}

	user, err := s.repo.FindByID(ctx, uint(userID))
	if err != nil || !user.Activo {
		return nil, ErrTokenInvalido
	}

	pub := usuarioToPublico(user)
	return &pub, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: string(hash),
		Rol:      req.Rol,
		Activo:   true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.CrearUsuarioResponse{
		Success: true,
		Message: "Usuario creado correctamente",
		ID:      user.ID,
	}, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, req dto.ActualizarUsuarioRequest) error {
	user, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return ErrUsuarioNoEncontrado
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailDuplicado
		}
		user.Email = req.Email
	}
	if req.Rol != "" {
		user.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return err
		}
		user.Password = string(hash)
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}
	return s.repo.Update(ctx, user)
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioPublico, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioPublico, len(users))
	for i := range users {
		resp[i] = usuarioToPublico(&users[i])
	}
	return resp, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"nombre":  user.Nombre,
		"rol":     user.Rol,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToPublico(u *model.Usuario) dto.UsuarioPublico {
	return dto.UsuarioPublico{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
}


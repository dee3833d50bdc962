package service

import (
	"context"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"
)

type NotificacionService interface {
	ListarNotificaciones(ctx context.Context) ([]model.NotificacionAdmin, error)
	CrearNotificacion(ctx context.Context, req dto.CrearNotificacionRequest) (*model.NotificacionAdmin, error)
	MarcarNotificacionLeida(ctx context.Context, id uint) error
}

type notificacionService struct {
	repo repository.NotificacionRepository
}

func NewNotificacionService(repo repository.NotificacionRepository) NotificacionService {
	return &notificacionService{repo: repo}
}

func (s *notificacionService) ListarNotificaciones(ctx context.Context) ([]model.NotificacionAdmin, error) {
	return s.repo.List(ctx)
}

func (s *notificacionService) CrearNotificacion(ctx context.Context, req dto.CrearNotificacionRequest) (*model.NotificacionAdmin, error) {
	tipo := req.Tipo
	if tipo == "" {
		tipo = model.NotificacionGeneral
	}
	notif := &model.NotificacionAdmin{
		Tipo:       tipo,
		Mensaje:    req.Mensaje,
		LinkAccion: req.LinkAccion,
	}
	if err := s.repo.Create(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

func (s *notificacionService) MarcarNotificacionLeida(ctx context.Context, id uint) error {
	return s.repo.MarcarLeida(ctx, id)
}

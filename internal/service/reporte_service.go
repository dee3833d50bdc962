package service

import (
	"context"
	"fmt"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"

	"github.com/rs/zerolog/log"
)

type ReporteService interface {
	CrearReporte(ctx context.Context, req dto.CrearReporteRequest) (*dto.CrearReporteResponse, error)
	ListarReportes(ctx context.Context, filter dto.ReporteFilter) ([]dto.ReporteListItem, error)
	MarcarReporteLeida(ctx context.Context, id uint) error
}

type reporteService struct {
	repo      repository.ReporteRepository
	notifRepo repository.NotificacionRepository
}

func NewReporteService(repo repository.ReporteRepository, notifRepo repository.NotificacionRepository) ReporteService {
	return &reporteService{repo: repo, notifRepo: notifRepo}
}

// CrearReporte records the incident and immediately raises the admin
// notification for it. The two writes are independent: a failed notification
// is logged but does not undo the report.
func (s *reporteService) CrearReporte(ctx context.Context, req dto.CrearReporteRequest) (*dto.CrearReporteResponse, error) {
	rep := &model.Reporte{
		PedidoID:        req.PedidoID,
		UsuarioID:       req.UsuarioID,
		Tipo:            req.Tipo,
		Mensaje:         req.Mensaje,
		RecepcionistaID: req.RecepcionistaID,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}

	mensaje := fmt.Sprintf("Reporte de pedido #%d: %s", req.PedidoID, req.Tipo)
	if req.Mensaje != "" {
		mensaje += " - " + req.Mensaje
	}
	link := fmt.Sprintf("/admin/pedidos/%d", req.PedidoID)
	notif := &model.NotificacionAdmin{
		Tipo:       model.NotificacionReporte,
		Mensaje:    mensaje,
		LinkAccion: &link,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Error().Err(err).Uint("reporte_id", rep.ID).Msg("failed to record report notification")
	}

	return &dto.CrearReporteResponse{
		Success:   true,
		ReporteID: rep.ID,
		NotifID:   notif.ID,
	}, nil
}

func (s *reporteService) ListarReportes(ctx context.Context, filter dto.ReporteFilter) ([]dto.ReporteListItem, error) {
	return s.repo.List(ctx, filter)
}

func (s *reporteService) MarcarReporteLeida(ctx context.Context, id uint) error {
	return s.repo.MarcarLeida(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"
	"github.com/adrianLames/Sistema-Pedidos/internal/worker"

	"github.com/rs/zerolog/log"
)

// AlertaService writes low-stock notifications for admins. It is always
// called with the base connection, never inside a caller's transaction, so
// the alert survives when the surrounding order operation rolls back.
type AlertaService interface {
	NotificarStockBajo(ctx context.Context, productos []dto.AlertaStock)
}

type alertaService struct {
	notifRepo  repository.NotificacionRepository
	dispatcher *worker.Dispatcher
}

func NewAlertaService(notifRepo repository.NotificacionRepository, dispatcher *worker.Dispatcher) AlertaService {
	return &alertaService{notifRepo: notifRepo, dispatcher: dispatcher}
}

// NotificarStockBajo records ONE notification covering every product in the
// batch, then queues the email digest. A failed insert is logged and
// swallowed: alerting must never break the operation that triggered it.
func (s *alertaService) NotificarStockBajo(ctx context.Context, productos []dto.AlertaStock) {
	if len(productos) == 0 {
		return
	}

	partes := make([]string, 0, len(productos))
	for _, p := range productos {
		partes = append(partes, fmt.Sprintf("%s (Stock: %d, Mínimo: %d)", p.Nombre, p.Stock, p.StockMinimo))
	}
	mensaje := "Stock bajo en: " + strings.Join(partes, ", ")
	link := "/admin/productos"

	notif := &model.NotificacionAdmin{
		Tipo:       model.NotificacionStock,
		Mensaje:    mensaje,
		LinkAccion: &link,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Error().Err(err).Msg("failed to record stock notification")
		return
	}

	if s.dispatcher != nil {
		payload := worker.AlertaEmailPayload{Mensaje: mensaje, Productos: productos}
		if err := s.dispatcher.EnqueueAlertaEmail(ctx, payload); err != nil {
			log.Error().Err(err).Msg("failed to enqueue stock alert email")
		}
	}
}

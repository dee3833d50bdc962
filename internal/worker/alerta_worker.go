package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Mailer sends an HTML email. Satisfied by infra.Mailer.
type Mailer interface {
	SendAlerta(to, subject, htmlBody string) error
}

// AlertaEmailPayload is the job body for low-stock digest emails.
type AlertaEmailPayload struct {
	Mensaje   string            `json:"mensaje"`
	Productos []dto.AlertaStock `json:"productos"`
}

// AlertaWorker emails the low-stock digest to the admin inbox.
type AlertaWorker struct {
	rdb        *redis.Client
	mailer     Mailer
	adminEmail string
}

func NewAlertaWorker(rdb *redis.Client, mailer Mailer, adminEmail string) *AlertaWorker {
	return &AlertaWorker{rdb: rdb, mailer: mailer, adminEmail: adminEmail}
}

func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invalid alerta payload")
		SendToDLQ(ctx, w.rdb, QueueAlertas, "alerta_stock", raw, "unmarshal: "+err.Error(), 1)
		return
	}
	if w.mailer == nil || w.adminEmail == "" {
		log.Warn().Msg("SMTP not configured, skipping stock alert email")
		return
	}

	var b strings.Builder
	b.WriteString("<h2>Alerta de stock bajo</h2><ul>")
	for _, p := range payload.Productos {
		fmt.Fprintf(&b, "<li>%s: stock %d (m&iacute;nimo %d)</li>", p.Nombre, p.Stock, p.StockMinimo)
	}
	b.WriteString("</ul><p>Revise el inventario en /admin/productos</p>")

	if err := w.mailer.SendAlerta(w.adminEmail, "Alerta de stock bajo", b.String()); err != nil {
		log.Error().Err(err).Msg("failed to send stock alert email")
		SendToDLQ(ctx, w.rdb, QueueAlertas, "alerta_stock", raw, err.Error(), 1)
		return
	}
	log.Info().Int("productos", len(payload.Productos)).Msg("stock alert email sent")
}

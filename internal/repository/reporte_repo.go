package repository

import (
	"context"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"

	"gorm.io/gorm"
)

type ReporteRepository interface {
	Create(ctx context.Context, r *model.Reporte) error
	List(ctx context.Context, filter dto.ReporteFilter) ([]dto.ReporteListItem, error)
	// MarcarLeida is idempotent: updating an already-read row is a no-op, and
	// a zero-row update is not distinguished from success.
	MarcarLeida(ctx context.Context, id uint) error
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) Create(ctx context.Context, rep *model.Reporte) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

const reporteSelect = `
	SELECT r.id, r.pedido_id, r.usuario_id, r.tipo, r.mensaje, r.recepcionista_id,
	       r.leida, r.fecha_reporte,
	       u.nombre AS usuario_nombre, u.rol,
	       p.codigo_pedido AS numero_pedido
	FROM reportes_pedidos r
	JOIN usuarios u ON r.usuario_id = u.id
	LEFT JOIN pedidos p ON r.pedido_id = p.id`

func (r *reporteRepo) List(ctx context.Context, filter dto.ReporteFilter) ([]dto.ReporteListItem, error) {
	var items []dto.ReporteListItem
	q := reporteSelect
	args := []interface{}{}

	switch {
	case filter.PedidoID > 0:
		q += " WHERE r.pedido_id = ? ORDER BY r.fecha_reporte DESC"
		args = append(args, filter.PedidoID)
	case filter.RecepcionistaID > 0:
		q += " WHERE r.recepcionista_id = ? ORDER BY r.leida ASC, r.fecha_reporte DESC"
		args = append(args, filter.RecepcionistaID)
	case filter.BodegueroID > 0:
		q += " WHERE r.usuario_id = ? ORDER BY r.leida ASC, r.fecha_reporte DESC"
		args = append(args, filter.BodegueroID)
	default:
		q += " ORDER BY r.leida ASC, r.fecha_reporte DESC"
	}

	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) MarcarLeida(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Reporte{}).
		Where("id = ?", id).
		Update("leida", true).Error
}

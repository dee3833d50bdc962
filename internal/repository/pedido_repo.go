package repository

import (
	"context"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	// CreateTx / CreateDetalleTx run inside the order-creation transaction —
	// callers must pass the tx instance.
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetallePedido) error

	FindByID(ctx context.Context, id uint) (*model.Pedido, error)
	ListDetalles(ctx context.Context, pedidoID uint) ([]model.DetallePedido, error)
	// UpdateEstado writes the new state and refreshes fecha_actualizacion.
	// A non-nil bodegueroID also records the acting warehouse user.
	UpdateEstado(ctx context.Context, id uint, estado string, bodegueroID *uint) error
	List(ctx context.Context) ([]dto.PedidoListItem, error)
	ListDetallesConProducto(ctx context.Context, pedidoID uint) ([]dto.DetalleConProducto, error)

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetallePedido) error {
	return tx.Create(d).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) ListDetalles(ctx context.Context, pedidoID uint) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("id ASC").
		Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uint, estado string, bodegueroID *uint) error {
	campos := map[string]interface{}{
		"estado":              estado,
		"fecha_actualizacion": gorm.Expr("NOW()"),
	}
	if bodegueroID != nil {
		campos["bodeguero_id"] = *bodegueroID
	}
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).
		Updates(campos).Error
}

func (r *pedidoRepo) List(ctx context.Context) ([]dto.PedidoListItem, error) {
	var items []dto.PedidoListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.codigo_pedido, p.recepcionista_id, p.bodeguero_id, p.estado,
		       p.fecha_creacion, p.fecha_actualizacion, p.observaciones,
		       p.tiempo_preparacion, p.fecha_entrega,
		       u.nombre AS recepcionista_nombre,
		       (SELECT COUNT(*) FROM detalle_pedidos dp WHERE dp.pedido_id = p.id) AS cantidad_items
		FROM pedidos p
		LEFT JOIN usuarios u ON p.recepcionista_id = u.id
		ORDER BY p.fecha_creacion DESC`).
		Scan(&items).Error
	return items, err
}

func (r *pedidoRepo) ListDetallesConProducto(ctx context.Context, pedidoID uint) ([]dto.DetalleConProducto, error) {
	var detalles []dto.DetalleConProducto
	err := r.db.WithContext(ctx).Raw(`
		SELECT dp.id, dp.producto_id, dp.cantidad, dp.precio_unitario,
		       pr.codigo, pr.nombre, pr.descripcion
		FROM detalle_pedidos dp
		JOIN productos pr ON dp.producto_id = pr.id
		WHERE dp.pedido_id = ?
		ORDER BY dp.id ASC`, pedidoID).
		Scan(&detalles).Error
	return detalles, err
}

package repository

import (
	"context"

	"github.com/adrianLames/Sistema-Pedidos/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	ExistsByCodigo(ctx context.Context, codigo string) (bool, error)
	List(ctx context.Context) ([]model.Producto, error)
	UpdateCampos(ctx context.Context, id uint, campos map[string]interface{}) error

	// ListStockBajo returns active products in low-stock condition
	// (stock <= stock_minimo), lowest stock first.
	ListStockBajo(ctx context.Context) ([]model.Producto, error)

	// DescontarStock performs the guarded decrement
	//   UPDATE productos SET stock = stock - ? WHERE id = ? AND stock >= ?
	// and reports whether a row was affected. A false return means
	// insufficient stock and the row is untouched. This predicate is the
	// system's sole concurrency-safety mechanism — do not rewrite it as a
	// read-then-write.
	DescontarStock(ctx context.Context, id uint, cantidad int) (bool, error)

	// DescontarStockTx is the same guarded decrement inside a transaction —
	// callers must pass the live tx handle.
	DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) ExistsByCodigo(ctx context.Context, codigo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("codigo = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("activo = true").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) UpdateCampos(ctx context.Context, id uint, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).
		Updates(campos).Error
}

func (r *productoRepo) ListStockBajo(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock <= stock_minimo AND activo = true").
		Order("stock ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) DescontarStock(ctx context.Context, id uint, cantidad int) (bool, error) {
	return descontar(r.db.WithContext(ctx), id, cantidad)
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uint, cantidad int) (bool, error) {
	return descontar(tx, id, cantidad)
}

func descontar(db *gorm.DB, id uint, cantidad int) (bool, error) {
	res := db.Model(&model.Producto{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected > 0, res.Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }

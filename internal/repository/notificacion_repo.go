package repository

import (
	"context"

	"github.com/adrianLames/Sistema-Pedidos/internal/model"

	"gorm.io/gorm"
)

type NotificacionRepository interface {
	Create(ctx context.Context, n *model.NotificacionAdmin) error
	// List returns unread-first, newest-first, capped at 50 rows.
	List(ctx context.Context) ([]model.NotificacionAdmin, error)
	MarcarLeida(ctx context.Context, id uint) error
}

type notificacionRepo struct{ db *gorm.DB }

func NewNotificacionRepository(db *gorm.DB) NotificacionRepository {
	return &notificacionRepo{db: db}
}

func (r *notificacionRepo) Create(ctx context.Context, n *model.NotificacionAdmin) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacionRepo) List(ctx context.Context) ([]model.NotificacionAdmin, error) {
	var notifs []model.NotificacionAdmin
	err := r.db.WithContext(ctx).
		Order("leida ASC, fecha_creacion DESC").
		Limit(50).
		Find(&notifs).Error
	return notifs, err
}

func (r *notificacionRepo) MarcarLeida(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.NotificacionAdmin{}).
		Where("id = ?", id).
		Update("leida", true).Error
}

package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// MetadataRepository lista as dimensões usadas pela barra de filtros do
// dashboard
type MetadataRepository interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	ListChannels(ctx context.Context) ([]*domain.Channel, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type metadataRepository struct {
	conn *postgres.Connection
}

func NewMetadataRepository(conn *postgres.Connection) MetadataRepository {
	return &metadataRepository{
		conn: conn,
	}
}

func (r *metadataRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("st.id", "st.name", "COALESCE(st.city, '')", "COALESCE(st.state, '')", "st.is_active").
		From(storesTable).
		OrderBy("st.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a listagem de lojas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar lojas")
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)

	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.City,
			&store.State,
			&store.IsActive,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de loja")
		}

		stores = append(stores, store)
	}

	return stores, rows.Err()
}

func (r *metadataRepository) ListChannels(ctx context.Context) ([]*domain.Channel, error) {
	query, args, err := squirrel.
		Select("ch.id", "ch.name", "COALESCE(ch.type, '')").
		From(channelsTable).
		OrderBy("ch.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a listagem de canais")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar canais")
	}
	defer rows.Close()

	channels := make([]*domain.Channel, 0)

	for rows.Next() {
		channel := &domain.Channel{}
		if err := rows.Scan(
			&channel.ID,
			&channel.Name,
			&channel.Type,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de canal")
		}

		channels = append(channels, channel)
	}

	return channels, rows.Err()
}

func (r *metadataRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("cat.id", "cat.name").
		From(categoriesTable).
		OrderBy("cat.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a listagem de categorias")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar categorias")
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)

	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(
			&category.ID,
			&category.Name,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de categoria")
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}

package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

// GetMetadata devolve todas as dimensões da barra de filtros em uma
// única chamada
func GetMetadata(repo repository.MetadataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := repo.ListStores(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list stores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		channels, err := repo.ListChannels(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list channels")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		categories, err := repo.ListCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list categories")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, logger, &domain.Metadata{
			Stores:     stores,
			Channels:   channels,
			Categories: categories,
		})
	})
}

func ListStores(repo repository.MetadataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := repo.ListStores(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list stores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, logger, listResponse{Data: stores, Count: len(stores)})
	})
}

func ListChannels(repo repository.MetadataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		channels, err := repo.ListChannels(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list channels")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, logger, listResponse{Data: channels, Count: len(channels)})
	})
}

func ListCategories(repo repository.MetadataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := repo.ListCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("metadata: failed to list categories")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, logger, listResponse{Data: categories, Count: len(categories)})
	})
}

package usecase

import (
	"context"
	"errors"

	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// listPage runs the page query and its count, then packages the converted rows.
func listPage[E any, R any](
	ctx context.Context,
	log *zap.Logger,
	name string,
	req *request.PaginatedRequest,
	find func(ctx context.Context, limit, offset int) ([]E, error),
	count func(ctx context.Context) (int64, error),
	convert func(E) R,
) (*response.PaginatedResponse[R], error) {
	limit := req.Limit()
	offset := req.Offset()

	rows, err := find(ctx, limit, offset)
	if err != nil {
		log.Error("Failed to list "+name,
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", limit),
		)
		return nil, apperror.Internal("failed to get "+name, err)
	}

	total, err := count(ctx)
	if err != nil {
		log.Error("Failed to count "+name, zap.Error(err))
		return nil, apperror.Internal("failed to count "+name, err)
	}

	data := make([]R, len(rows))
	for i, row := range rows {
		data[i] = convert(row)
	}

	log.Debug(name+" retrieved",
		zap.Int("count", len(data)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", limit),
	)

	return response.NewPaginatedResponse(data, req.Page, limit, total), nil
}

// parseID turns a path parameter into a UUID, reporting KindInvalid when it is not one.
func parseID(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperror.Invalid("invalid "+name+" id", err)
	}
	return id, nil
}

// internalUnlessApp keeps errors that already carry a kind and wraps the rest as internal.
func internalUnlessApp(err error, message string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(message, err)
}

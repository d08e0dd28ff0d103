package queries

import (
	"context"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActorsQueryHandler lists directory entries from the database,
// sorted by name for stable dashboard display.
//
// Example:
//
//	handler := NewGetActorsQueryHandler(db)
//	query := NewGetActorsQuery()
//
//	directory, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list actors: %w", err)
//	}
//	fmt.Printf("%d actors in the directory\n", len(directory))
type GetActorsQueryHandler struct {
	db *gorm.DB
}

// NewGetActorsQueryHandler creates a handler for directory listings.
// Requires a GORM database connection for query execution.
func NewGetActorsQueryHandler(db *gorm.DB) GetActorsQueryHandler {
	return GetActorsQueryHandler{db: db}
}

// Handle executes the query and returns matching directory entries by name.
func (h GetActorsQueryHandler) Handle(ctx context.Context, query GetActorsQuery) ([]ActorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			email,
			role
		FROM actors
	`
	args := make([]any, 0, 1)
	if role := query.Role(); role != nil {
		sql += ` WHERE role = ?`
		args = append(args, int(*role))
	}
	sql += ` ORDER BY name`

	actors := make([]ActorResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry ActorResponse
			id    uuid.UUID
			role  int
		)

		if err = rows.Scan(&id, &entry.Name, &entry.Email, &role); err != nil {
			return nil, err
		}

		actorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = actorID
		entry.Role = actor.Role(role)
		actors = append(actors, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

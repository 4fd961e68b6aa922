package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/showdown/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/showdown/internal/models"
)

// Repository defines the interface for room snapshot persistence
type Repository interface {
	// SaveRoom upserts a room snapshot keyed by room code
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves the last-known room snapshot by room code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// ListOpenRooms retrieves the codes of rooms with an open slot
	ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error)
}

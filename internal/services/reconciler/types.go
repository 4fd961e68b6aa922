package reconciler

import "github.com/KirkDiggler/showdown/internal/models"

type ScheduleSaveInput struct {
	// Room is the state to persist. The service takes its own deep copy,
	// so the caller may keep mutating the room after scheduling.
	Room *models.Room
}

type LoadInput struct {
	RoomCode string
}

type LoadOutput struct {
	Room *models.Room
}

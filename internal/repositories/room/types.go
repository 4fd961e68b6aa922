package room

import "github.com/KirkDiggler/showdown/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomCode string
}

type ListOpenRoomsInput struct {
}

type ListOpenRoomsOutput struct {
	RoomCodes []string
}

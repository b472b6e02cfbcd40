package backend

import (
	"context"
	"net/url"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Rooms returns every room.
func (c *Client) Rooms(ctx context.Context) ([]model.Room, error) {
	var out []model.Room
	err := c.get(ctx, "/salas", &out)
	return out, err
}

// ActiveRooms returns rooms available for scheduling.
func (c *Client) ActiveRooms(ctx context.Context) ([]model.Room, error) {
	var out []model.Room
	err := c.get(ctx, "/salas/activas", &out)
	return out, err
}

// Room fetches one room by id.
func (c *Client) Room(ctx context.Context, id string) (*model.Room, error) {
	var out model.Room
	if err := c.get(ctx, "/salas/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRoom creates a room; the backend derives capacity from geometry.
func (c *Client) CreateRoom(ctx context.Context, in model.Room) (*model.Room, error) {
	var out model.Room
	if err := c.post(ctx, "/salas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom replaces a room's fields.
func (c *Client) UpdateRoom(ctx context.Context, id string, in model.Room) (*model.Room, error) {
	var out model.Room
	if err := c.put(ctx, "/salas/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateRoom hides a room from scheduling without deleting it.
func (c *Client) DeactivateRoom(ctx context.Context, id string) error {
	return c.patch(ctx, "/salas/"+url.PathEscape(id)+"/desactivar", nil)
}

// DeleteRoom removes a room permanently.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.del(ctx, "/salas/"+url.PathEscape(id))
}

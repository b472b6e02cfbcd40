package backend

import (
	"context"
	"net/url"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Movies returns every movie, active or not.  Admin listing.
func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var out []model.Movie
	err := c.get(ctx, "/peliculas", &out)
	return out, err
}

// Billboard returns the movies currently showing (the cartelera).
func (c *Client) Billboard(ctx context.Context) ([]model.Movie, error) {
	var out []model.Movie
	err := c.get(ctx, "/peliculas/cartelera", &out)
	return out, err
}

// Movie fetches one movie by id.
func (c *Client) Movie(ctx context.Context, id string) (*model.Movie, error) {
	var out model.Movie
	if err := c.get(ctx, "/peliculas/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchMoviesByTitle returns movies whose title matches the given text.
func (c *Client) SearchMoviesByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	var out []model.Movie
	err := c.get(ctx, "/peliculas/buscar/titulo/"+url.PathEscape(title), &out)
	return out, err
}

// CreateMovie creates a movie and returns the stored document.
func (c *Client) CreateMovie(ctx context.Context, in model.Movie) (*model.Movie, error) {
	var out model.Movie
	if err := c.post(ctx, "/peliculas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMovie replaces a movie's fields.
func (c *Client) UpdateMovie(ctx context.Context, id string, in model.Movie) (*model.Movie, error) {
	var out model.Movie
	if err := c.put(ctx, "/peliculas/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateMovie pulls a movie off the billboard without deleting it.
func (c *Client) DeactivateMovie(ctx context.Context, id string) error {
	return c.patch(ctx, "/peliculas/"+url.PathEscape(id)+"/desactivar", nil)
}

// DeleteMovie removes a movie permanently.
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	return c.del(ctx, "/peliculas/"+url.PathEscape(id))
}

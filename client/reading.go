package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

func (c *Client) ListReadings(ctx context.Context) ([]model.Reading, error) {
	out, err := doList[model.Reading](ctx, c, "/reading")
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return out, nil
}

// CreateReading sends the title plus author names; the server reuses
// existing authors by name and creates the rest.
func (c *Client) CreateReading(ctx context.Context, input model.ReadingInput) (*model.Reading, error) {
	out, err := doCreate[model.Reading](ctx, c, "/reading", input)
	if err != nil {
		return nil, fmt.Errorf("create reading: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateReading(ctx context.Context, id uint, patch model.ReadingPatch) (*model.Reading, error) {
	out, err := doUpdate[model.Reading](ctx, c, fmt.Sprintf("/reading/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update reading: %w", err)
	}
	return out, nil
}

// DeleteReading unlinks the book from its authors and removes it. Authors
// stay behind for other books.
func (c *Client) DeleteReading(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/reading/%d", id)); err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	return nil
}

func (c *Client) ListAuthors(ctx context.Context) ([]model.Author, error) {
	out, err := doList[model.Author](ctx, c, "/authors")
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/authors/%d", id)); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

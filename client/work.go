package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

func (c *Client) ListWork(ctx context.Context) ([]model.Work, error) {
	out, err := doList[model.Work](ctx, c, "/work")
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}
	return out, nil
}

func (c *Client) CreateWork(ctx context.Context, work model.Work) (*model.Work, error) {
	out, err := doCreate[model.Work](ctx, c, "/work", work)
	if err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateWork(ctx context.Context, id uint, patch model.WorkPatch) (*model.Work, error) {
	out, err := doUpdate[model.Work](ctx, c, fmt.Sprintf("/work/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update work: %w", err)
	}
	return out, nil
}

// DeleteWork removes the work item together with its notes.
func (c *Client) DeleteWork(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/work/%d", id)); err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	return nil
}

func (c *Client) ListWorkNotes(ctx context.Context, workID uint) ([]model.WorkNote, error) {
	out, err := doList[model.WorkNote](ctx, c, fmt.Sprintf("/work/%d/notes", workID))
	if err != nil {
		return nil, fmt.Errorf("list work notes: %w", err)
	}
	return out, nil
}

func (c *Client) CreateWorkNote(ctx context.Context, workID uint, note model.WorkNote) (*model.WorkNote, error) {
	out, err := doCreate[model.WorkNote](ctx, c, fmt.Sprintf("/work/%d/notes", workID), note)
	if err != nil {
		return nil, fmt.Errorf("create work note: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateWorkNote(ctx context.Context, workID, id uint, patch model.WorkNotePatch) (*model.WorkNote, error) {
	out, err := doUpdate[model.WorkNote](ctx, c, fmt.Sprintf("/work/%d/notes/%d", workID, id), patch)
	if err != nil {
		return nil, fmt.Errorf("update work note: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteWorkNote(ctx context.Context, workID, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/work/%d/notes/%d", workID, id)); err != nil {
		return fmt.Errorf("delete work note: %w", err)
	}
	return nil
}

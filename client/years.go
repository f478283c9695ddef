package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

func (c *Client) ListYears(ctx context.Context) ([]model.Year, error) {
	out, err := doList[model.Year](ctx, c, "/years")
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	return out, nil
}

func (c *Client) CreateYear(ctx context.Context, yearNumber int) (*model.Year, error) {
	out, err := doCreate[model.Year](ctx, c, "/years", model.Year{YearNumber: yearNumber})
	if err != nil {
		return nil, fmt.Errorf("create year: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateYear(ctx context.Context, id uint, yearNumber int) (*model.Year, error) {
	patch := model.YearPatch{YearNumber: &yearNumber}
	out, err := doUpdate[model.Year](ctx, c, fmt.Sprintf("/years/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update year: %w", err)
	}
	return out, nil
}

// DeleteYear removes the year and everything scoped under it.
func (c *Client) DeleteYear(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/years/%d", id)); err != nil {
		return fmt.Errorf("delete year: %w", err)
	}
	return nil
}

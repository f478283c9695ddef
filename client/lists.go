package client

import (
	"context"
	"fmt"

	"year-planner/model"
)

// Flat collections: goals, courses and the wishlist live outside any year.

func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	out, err := doList[model.Goal](ctx, c, "/goals")
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}

func (c *Client) CreateGoal(ctx context.Context, goal model.Goal) (*model.Goal, error) {
	out, err := doCreate[model.Goal](ctx, c, "/goals", goal)
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id uint, patch model.GoalPatch) (*model.Goal, error) {
	out, err := doUpdate[model.Goal](ctx, c, fmt.Sprintf("/goals/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/goals/%d", id)); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	out, err := doList[model.Course](ctx, c, "/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

func (c *Client) CreateCourse(ctx context.Context, course model.Course) (*model.Course, error) {
	out, err := doCreate[model.Course](ctx, c, "/courses", course)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id uint, patch model.CoursePatch) (*model.Course, error) {
	out, err := doUpdate[model.Course](ctx, c, fmt.Sprintf("/courses/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/courses/%d", id)); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (c *Client) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	out, err := doList[model.WishlistItem](ctx, c, "/wishlist")
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return out, nil
}

func (c *Client) CreateWishlistItem(ctx context.Context, item model.WishlistItem) (*model.WishlistItem, error) {
	out, err := doCreate[model.WishlistItem](ctx, c, "/wishlist", item)
	if err != nil {
		return nil, fmt.Errorf("create wishlist item: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateWishlistItem(ctx context.Context, id uint, patch model.WishlistItemPatch) (*model.WishlistItem, error) {
	out, err := doUpdate[model.WishlistItem](ctx, c, fmt.Sprintf("/wishlist/%d", id), patch)
	if err != nil {
		return nil, fmt.Errorf("update wishlist item: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteWishlistItem(ctx context.Context, id uint) error {
	if err := doDelete(ctx, c, fmt.Sprintf("/wishlist/%d", id)); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

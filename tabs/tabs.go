// Package tabs resolves what a planner tab should display. Every tab maps
// through one closed dispatch table to a typed client fetch; the resolver
// in front of it caches the last rows per tab, deduplicates concurrent
// fetches and keeps stale results from overwriting fresh ones.
package tabs

import (
	"context"
	"fmt"

	"year-planner/client"
)

// Tab identifies one planner tab.
type Tab int

const (
	TabYears Tab = iota
	TabCalendar
	TabYearlyPlans
	TabHabitTracker
	TabGratitudeDiary
	TabReview
	TabMonths
	TabMonthlyPlans
	TabMonthlyDiary
	TabTaskColours
	TabTaskPopups
	TabBestInMonths
	TabGoals
	TabCourses
	TabWishlist
	TabReading
	TabAuthors
	TabWork
)

func (t Tab) String() string {
	if e, ok := tabTable[t]; ok {
		return e.name
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// Scope is the year a scoped tab shows. Zero for global tabs.
type Scope uint

// tabEntry binds a tab to its fetch. The table below is the complete set;
// a tab outside it is rejected, never guessed at.
type tabEntry struct {
	name   string
	scoped bool
	fetch  func(ctx context.Context, c *client.Client, yearID uint) (any, error)
}

var tabTable = map[Tab]tabEntry{
	TabYears: {name: "years", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListYears(ctx)
	}},
	TabCalendar: {name: "calendar", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListCalendar(ctx, yearID)
	}},
	TabYearlyPlans: {name: "yearly plans", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListYearlyPlans(ctx, yearID)
	}},
	TabHabitTracker: {name: "habit tracker", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListHabits(ctx, yearID)
	}},
	TabGratitudeDiary: {name: "gratitude diary", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListGratitude(ctx, yearID)
	}},
	TabReview: {name: "review", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListReview(ctx, yearID)
	}},
	TabMonths: {name: "months", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListMonths(ctx, yearID)
	}},
	TabMonthlyPlans: {name: "monthly plans", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListMonthlyPlans(ctx, yearID)
	}},
	TabMonthlyDiary: {name: "monthly diary", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListDiary(ctx, yearID)
	}},
	TabTaskColours: {name: "task colours", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListTaskColours(ctx, yearID)
	}},
	TabTaskPopups: {name: "task popups", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListTaskPopups(ctx, yearID)
	}},
	TabBestInMonths: {name: "best in months", scoped: true, fetch: func(ctx context.Context, c *client.Client, yearID uint) (any, error) {
		return c.ListBestInMonths(ctx, yearID)
	}},
	TabGoals: {name: "goals", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListGoals(ctx)
	}},
	TabCourses: {name: "courses", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListCourses(ctx)
	}},
	TabWishlist: {name: "wishlist", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListWishlist(ctx)
	}},
	TabReading: {name: "reading", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListReadings(ctx)
	}},
	TabAuthors: {name: "authors", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListAuthors(ctx)
	}},
	TabWork: {name: "work", fetch: func(ctx context.Context, c *client.Client, _ uint) (any, error) {
		return c.ListWork(ctx)
	}},
}

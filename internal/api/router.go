package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"year-planner/model"
)

// NewRouter declares the complete route table. Year-scoped entities hang
// under /years/:year_id/<table>; flat collections sit at the root. Adding
// an entity means adding one line here.
func NewRouter(s *Server, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", s.health)

	root := r.Group("")
	if s.token != "" {
		root.Use(authRequired(s.token))
	}

	years := root.Group("/years")
	{
		years.GET("", s.listYears)
		years.POST("", s.createYear)
		years.PATCH("/:year_id", s.updateYear)
		years.DELETE("/:year_id", s.deleteYear)
	}

	scoped := years.Group("/:year_id")
	{
		registerScoped[model.CalendarEvent, *model.CalendarEvent, model.CalendarEventPatch](s, scoped, "calendar event", "calendar")
		registerScoped[model.YearlyPlan, *model.YearlyPlan, model.YearlyPlanPatch](s, scoped, "yearly plan", "yearly_plans")
		registerScoped[model.Habit, *model.Habit, model.HabitPatch](s, scoped, "habit", "habit_tracker")
		registerScoped[model.GratitudeEntry, *model.GratitudeEntry, model.GratitudeEntryPatch](s, scoped, "gratitude entry", "gratitude_diary")
		registerScoped[model.ReviewEntry, *model.ReviewEntry, model.ReviewEntryPatch](s, scoped, "review entry", "review")
		registerScoped[model.Month, *model.Month, model.MonthPatch](s, scoped, "month", "months")
		registerScoped[model.MonthlyPlan, *model.MonthlyPlan, model.MonthlyPlanPatch](s, scoped, "monthly plan", "monthly_plans")
		registerScoped[model.DiaryEntry, *model.DiaryEntry, model.DiaryEntryPatch](s, scoped, "diary entry", "monthly_diary")
		registerScoped[model.TaskColour, *model.TaskColour, model.TaskColourPatch](s, scoped, "task colour", "task_colours")
		registerScoped[model.TaskPopup, *model.TaskPopup, model.TaskPopupPatch](s, scoped, "task popup", "task_popups")
		registerScoped[model.BestInMonth, *model.BestInMonth, model.BestInMonthPatch](s, scoped, "best in month", "best_in_months")
	}

	registerList[model.Goal, model.GoalPatch](s, root, "goal", "goals")
	registerList[model.Course, model.CoursePatch](s, root, "course", "courses")
	registerList[model.WishlistItem, model.WishlistItemPatch](s, root, "wishlist item", "wishlist")

	reading := root.Group("/reading")
	{
		reading.GET("", s.listReadings)
		reading.POST("", s.createReading)
		reading.PATCH("/:id", s.updateReading)
		reading.DELETE("/:id", s.deleteReading)
	}

	root.GET("/authors", s.listAuthors)
	root.DELETE("/authors/:id", s.deleteAuthor)

	work := root.Group("/work")
	{
		work.GET("", s.listWork)
		work.POST("", s.createWork)
		work.PATCH("/:work_id", s.updateWork)
		work.DELETE("/:work_id", s.deleteWork)

		notes := work.Group("/:work_id/notes")
		notes.GET("", s.listWorkNotes)
		notes.POST("", s.createWorkNote)
		notes.PATCH("/:id", s.updateWorkNote)
		notes.DELETE("/:id", s.deleteWorkNote)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
}

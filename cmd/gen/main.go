package main

import (
	"fittrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.TeamModel{},
		model.SquadModel{},
		model.MembershipModel{},
		model.TeamWorkoutModel{},
		model.TeamAssessmentModel{},
		model.WorkoutModel{},
		model.AssessmentModel{},
		model.GoalModel{},
		model.MoodCheckInModel{},
		model.JournalModel{},
		model.SummaryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

package services

import "github.com/terraincognita07/fitplanner/internal/models"

func BuildProgressSummary(history []models.WeightEntry) models.ProgressSummary {
	summary := models.ProgressSummary{Entries: len(history)}
	if len(history) == 0 {
		return summary
	}

	first := history[0]
	last := history[len(history)-1]
	summary.HasData = true
	summary.StartingWeight = first.Weight
	summary.CurrentWeight = last.Weight
	summary.CurrentBMI = last.BMI
	summary.TotalChange = roundToTenth(last.Weight - first.Weight)
	return summary
}
